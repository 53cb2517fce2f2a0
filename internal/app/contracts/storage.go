package contracts

import "context"

// ExportStorage archives generated export files (CSV) to the object store.
type ExportStorage interface {
	PutObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

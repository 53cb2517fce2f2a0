package platform

import (
	"bytes"
	"context"
	"io"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/metrics"
	"medicore-admin-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Requester is the shared plumbing under every typed platform client: one
// http.Client with a timeout, a fair-use limiter on outbound calls, bearer
// auth from the caller's session (service key when the session carries no
// platform token), and decoding of the platform error envelope. No retry,
// no backoff: a failed call surfaces as the toastable error and the
// operator re-triggers.
type Requester struct {
	BaseUrl    string
	ServiceKey string
	Client     *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewRequester(internalConfig *config.InternalConfig, logger *zap.Logger) *Requester {
	timeout := time.Duration(internalConfig.Platform.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Requester{
		BaseUrl:    internalConfig.Platform.BaseUrl,
		ServiceKey: internalConfig.Platform.ServiceKey,
		Client:     &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(rate.Limit(internalConfig.Platform.RateLimitPerSecond), internalConfig.Platform.RateLimitBurst),
		Log:        logger,
	}
}

// errorEnvelope is the platform's error body; non-JSON bodies fall back to
// the HTTP status text.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (r *Requester) Do(ctx context.Context, method, path string, payload interface{}, resource string) ([]byte, error) {
	requestID := utils.RequestIDFromContext(ctx)

	if err := r.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrPlatformRateLimited(err)
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.BaseUrl+path, body)
	if err != nil {
		r.Log.Error("platform.Requester.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	session := utils.SessionFromContext(ctx)
	if session != nil && session.PlatformToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+session.PlatformToken)
	} else {
		req.Header.Set(constvars.HeaderXServiceKey, r.ServiceKey)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		metrics.PlatformRequestsTotal.WithLabelValues(resource, "network_error").Inc()
		r.Log.Error("platform.Requester.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPlatformUrlKey, r.BaseUrl+path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resource)
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		metrics.PlatformRequestsTotal.WithLabelValues(resource, "error").Inc()
		clientMessage := ""
		var envelope errorEnvelope
		if err := json.Unmarshal(bodyBytes, &envelope); err == nil {
			clientMessage = envelope.Message
		}
		if clientMessage == "" {
			clientMessage = http.StatusText(resp.StatusCode)
		}
		r.Log.Error("platform.Requester.Do platform returned error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPlatformUrlKey, r.BaseUrl+path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrPlatformRequest(resp.StatusCode, clientMessage, resource)
	}

	metrics.PlatformRequestsTotal.WithLabelValues(resource, "success").Inc()
	return bodyBytes, nil
}

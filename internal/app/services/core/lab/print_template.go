package lab

import (
	"html/template"
	"medicore-admin-service/internal/app/models"
)

type labReportData struct {
	Order       *models.LabOrder
	GeneratedAt string
}

var labReportTemplate = template.Must(template.New("lab_report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Lab Report {{.Order.Code}}</title>
<style>
  body { font-family: Arial, sans-serif; margin: 40px; color: #222; }
  h1 { font-size: 20px; margin-bottom: 0; }
  .meta { color: #555; font-size: 13px; margin-bottom: 24px; }
  table { border-collapse: collapse; width: 100%; font-size: 13px; }
  th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
  th { background: #f4f4f4; }
  .flag-high, .flag-low { color: #b45309; font-weight: bold; }
  .flag-critical { color: #b91c1c; font-weight: bold; }
  .footer { margin-top: 32px; font-size: 11px; color: #777; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>Laboratory Report</h1>
<div class="meta">
  <div><strong>{{.Order.PatientName}}</strong> ({{.Order.PatientID}})</div>
  <div>Test: {{.Order.TestName}} · {{.Order.Category}}</div>
  <div>Order: {{.Order.Code}} · Priority: {{.Order.Priority}} · Status: {{.Order.Status}}</div>
  <div>Ordered by {{.Order.OrderedBy}} at {{.Order.OrderedAt}}</div>
  {{if .Order.Specimen}}<div>Specimen: {{.Order.Specimen}}</div>{{end}}
</div>
{{if .Order.Results}}
<table>
<tr><th>Parameter</th><th>Value</th><th>Unit</th><th>Reference Range</th><th>Flag</th></tr>
{{range .Order.Results}}
<tr>
  <td>{{.Parameter}}</td>
  <td>{{.Value}}</td>
  <td>{{.Unit}}</td>
  <td>{{.ReferenceRange}}</td>
  <td class="flag-{{.Flag}}">{{.Flag}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No results recorded yet.</p>
{{end}}
<div class="footer">Generated at {{.GeneratedAt}}{{if .Order.CompletedAt}} · Completed at {{.Order.CompletedAt}}{{end}}</div>
</body>
</html>
`))

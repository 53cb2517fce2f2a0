package patients

import (
	"html/template"
	"medicore-admin-service/internal/app/models"
)

type prescriptionPrintData struct {
	Patient      *models.Patient
	Prescription *models.Prescription
	GeneratedAt  string
}

var prescriptionTemplate = template.Must(template.New("prescription").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Prescription {{.Prescription.ID}}</title>
<style>
  body { font-family: Arial, sans-serif; margin: 40px; color: #222; }
  h1 { font-size: 20px; margin-bottom: 0; }
  .patient { margin: 16px 0 24px; font-size: 13px; color: #444; }
  table { border-collapse: collapse; width: 100%; font-size: 13px; }
  th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
  th { background: #f4f4f4; }
  .signature { margin-top: 64px; font-size: 13px; }
  .signature .line { border-top: 1px solid #222; width: 220px; padding-top: 4px; }
  .footer { margin-top: 32px; font-size: 11px; color: #777; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>Prescription</h1>
<div class="patient">
  <div><strong>{{.Patient.Name}}</strong> · MRN {{.Patient.MedicalRecordNumber}}</div>
  {{if .Patient.BirthDate}}<div>Born {{.Patient.BirthDate}}{{if .Patient.Gender}} · {{.Patient.Gender}}{{end}}</div>{{end}}
  {{if .Patient.Allergies}}<div>Allergies: {{range $i, $a := .Patient.Allergies}}{{if $i}}, {{end}}{{$a}}{{end}}</div>{{end}}
  <div>Issued {{.Prescription.IssuedAt}} · Status: {{.Prescription.Status}}</div>
</div>
<table>
<tr><th>Medicine</th><th>Dosage</th><th>Frequency</th><th>Duration</th><th>Instructions</th></tr>
{{range .Prescription.Items}}
<tr>
  <td>{{.MedicineName}}</td>
  <td>{{.Dosage}}</td>
  <td>{{.Frequency}}</td>
  <td>{{.Duration}}</td>
  <td>{{.Instructions}}</td>
</tr>
{{end}}
</table>
<div class="signature">
  <div class="line">{{.Prescription.Prescriber}}</div>
  <div>Prescriber</div>
</div>
<div class="footer">Generated at {{.GeneratedAt}}</div>
</body>
</html>
`))

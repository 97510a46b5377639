package services

import (
	"bytes"
	"context"
	"html/template"

	"legal_crm_go/models"

	"gorm.io/gorm"
)

const caseSummaryTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #1a1a1a; font-size: 12pt; }
  h1 { font-size: 18pt; border-bottom: 2px solid #1a1a1a; padding-bottom: 8px; }
  h2 { font-size: 14pt; margin-top: 24px; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #ccc; font-size: 11pt; }
  .meta { color: #555; }
</style>
</head>
<body>
  <h1>Case Summary: {{ .Case.Title }}</h1>
  <p class="meta">Case Number: {{ .Case.CaseNumber }} &middot; Status: {{ .Case.Status }}</p>
  {{ if .Case.Client }}<p>Client: {{ .Case.Client.Name }}</p>{{ end }}
  {{ if .Case.Lawyer }}<p>Lawyer: {{ .Case.Lawyer.Name }}</p>{{ end }}
  {{ if .Case.CourtName }}<p>Court: {{ .Case.CourtName }}</p>{{ end }}
  {{ if .Case.Description }}<h2>Description</h2><p>{{ .Case.Description }}</p>{{ end }}

  {{ if .Case.OpposingClients }}
  <h2>Opposing Clients</h2>
  <table>
    <tr><th>Name</th><th>Email</th><th>Mobile</th></tr>
    {{ range .Case.OpposingClients }}
    <tr><td>{{ .FirstName }} {{ .LastName }}</td><td>{{ if .Email }}{{ .Email }}{{ end }}</td><td>{{ if .Mobile }}{{ .Mobile }}{{ end }}</td></tr>
    {{ end }}
  </table>
  {{ end }}

  {{ if .Case.Witnesses }}
  <h2>Witnesses</h2>
  <table>
    <tr><th>Name</th><th>Email</th><th>Mobile</th></tr>
    {{ range .Case.Witnesses }}
    <tr><td>{{ .FirstName }} {{ .LastName }}</td><td>{{ if .Email }}{{ .Email }}{{ end }}</td><td>{{ if .Mobile }}{{ .Mobile }}{{ end }}</td></tr>
    {{ end }}
  </table>
  {{ end }}

  {{ if .Hearings }}
  <h2>Hearings</h2>
  <table>
    <tr><th>Date</th><th>Court / Location</th><th>Judge</th><th>Status</th></tr>
    {{ range .Hearings }}
    <tr><td>{{ .HearingDate }}{{ if .HearingTime }} {{ .HearingTime }}{{ end }}</td><td>{{ if .CourtLocation }}{{ .CourtLocation }}{{ end }}</td><td>{{ if .Judge }}{{ .Judge }}{{ end }}</td><td>{{ .Status }}</td></tr>
    {{ end }}
  </table>
  {{ end }}
</body>
</html>`

var caseSummaryTmpl = template.Must(template.New("case_summary").Parse(caseSummaryTemplate))

// RenderCaseSummaryHTML builds the printable case summary document
func RenderCaseSummaryHTML(dbConn *gorm.DB, caseID string) (string, error) {
	kase, err := GetCaseByID(dbConn, caseID)
	if err != nil {
		return "", err
	}

	hearings, err := GetHearings(dbConn, "")
	if err != nil {
		return "", err
	}
	var caseHearings []models.Hearing
	for _, h := range hearings {
		if h.CaseID != nil && *h.CaseID == kase.ID {
			caseHearings = append(caseHearings, h)
		}
	}

	data := map[string]interface{}{
		"Case":     kase,
		"Hearings": caseHearings,
	}

	var buf bytes.Buffer
	if err := caseSummaryTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateCaseSummaryPDF renders the case summary to PDF via headless Chrome
func GenerateCaseSummaryPDF(ctx context.Context, dbConn *gorm.DB, caseID string) ([]byte, error) {
	html, err := RenderCaseSummaryHTML(dbConn, caseID)
	if err != nil {
		return nil, err
	}
	return RenderPDF(ctx, html, PaperLetter)
}

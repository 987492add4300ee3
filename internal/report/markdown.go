package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownTemplate renders the narrative sections. User-supplied text goes
// through the md function so it cannot inject Markdown or raw HTML.
const markdownTemplate = `# 📊 {{md .CompanyName}} - विश्लेषण रिपोर्ट

_{{.Title}} · {{.GeneratedAt}}{{if .SectorLabel}} · Sector: {{md .SectorLabel}}{{end}}_

| Metric | Value |
|---|---|
| Multibagger Score | {{.Score}}/100 |
| Growth Potential | {{.GrowthPotential}} |
| Risk Level | {{.RiskLevel}} |
| Investment Horizon | {{.TimeHorizon}} |

## 💰 Financial Metrics

| Metric | Value |
|---|---|
{{- range .Metrics}}
| {{.Label}} | {{.Value}} |
{{- end}}

## ✨ प्रमुख शक्तियां (Key Strengths)
{{range .Strengths}}
- {{md .}}
{{- end}}

## ⚠️ जोखिम कारक (Risk Factors)
{{range .Risks}}
- {{md .}}
{{- end}}

## 🏭 Industry Outlook

{{md .Outlook}}

## 💡 सिफारिश (Recommendation)

**{{md .Recommendation}}**

---

_{{.Disclaimer}}_
`

var mdTmpl = texttemplate.Must(texttemplate.New("markdown").Funcs(texttemplate.FuncMap{
	"md": escapeMarkdown,
}).Parse(markdownTemplate))

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
)

// escapeMarkdown backslash-escapes characters with Markdown meaning.
func escapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}

type markdownData struct {
	Data
	Disclaimer string
}

func renderMarkdown(d Data) (string, error) {
	var buf bytes.Buffer
	if err := mdTmpl.Execute(&buf, markdownData{Data: d, Disclaimer: Disclaimer}); err != nil {
		return "", fmt.Errorf("executing markdown template: %w", err)
	}
	return buf.String(), nil
}

// markdownToHTML converts Markdown with GitHub-flavoured tables. Raw HTML
// in the source is dropped, not passed through.
var markdownToHTML = goldmark.New(goldmark.WithExtensions(extension.Table))

// htmlTemplate wraps the converted Markdown in a standalone page. The
// summary strip carries the score and risk classes the page also uses.
const htmlTemplate = `<!DOCTYPE html>
<html lang="hi">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.CompanyName}} - {{.Title}}</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 900px; margin: 0 auto; padding: 20px; line-height: 1.6; color: #1a1a2e; }
  table { border-collapse: collapse; width: 100%; margin: 8px 0; }
  th, td { border: 1px solid #e5e7eb; padding: 6px 10px; text-align: left; }
  .summary { display: flex; gap: 16px; align-items: center; padding: 12px; background: #f8fafc; border-radius: 8px; }
  .score-high { color: #16a34a; } .score-medium { color: #ea580c; } .score-low { color: #dc2626; }
  .risk-badge { padding: 4px 10px; border-radius: 12px; font-weight: 600; }
  .risk-low { background: #dcfce7; color: #166534; } .risk-medium { background: #fef3c7; color: #92400e; } .risk-high { background: #fee2e2; color: #991b1b; }
</style>
</head>
<body>
<div class="summary">
  <span class="metric-label">Multibagger Score:</span>
  <span class="metric-value {{.ScoreClass}}">{{.Score}}/100</span>
  <span class="risk-badge {{.RiskClass}}">{{.RiskLevel}}</span>
</div>
<article class="report">
{{.Body}}
</article>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").Parse(htmlTemplate))

type htmlData struct {
	Data
	Body template.HTML
}

func renderHTML(w io.Writer, d Data) error {
	md, err := renderMarkdown(d)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	if err := markdownToHTML.Convert([]byte(md), &body); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	if err := htmlTmpl.Execute(w, htmlData{Data: d, Body: template.HTML(body.String())}); err != nil {
		return fmt.Errorf("executing html template: %w", err)
	}
	return nil
}

// Package report renders an analysis as plain text, Markdown, a standalone
// HTML page or indented JSON, for the CLI and for saving reports to disk.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/seenimoa/multibagger/internal/sector"
	"github.com/seenimoa/multibagger/pkg/models"
	"github.com/seenimoa/multibagger/pkg/utils"
)

// ════════════════════════════════════════════════════════════════════
// Report Renderer: text, Markdown, HTML and JSON views of an analysis
// ════════════════════════════════════════════════════════════════════

// Format specifies the output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatHTML, FormatJSON}
}

// ParseFormat maps a flag value to a Format. "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Options controls rendering.
type Options struct {
	Format Format
	Sector string    // sector code the analysis was requested with
	Now    time.Time // report timestamp; zero means time.Now()
}

// Title is the application title used in report headers.
const Title = "Indian Multibagger Stock Predictor"

// ════════════════════════════════════════════════════════════════════
// Visual tiers
// ════════════════════════════════════════════════════════════════════

// ScoreClass maps a score to its CSS class, using the same thresholds as
// the score tiers.
func ScoreClass(score int) string {
	switch models.TierForScore(score) {
	case models.TierHigh:
		return "score-high"
	case models.TierMedium:
		return "score-medium"
	default:
		return "score-low"
	}
}

// RiskClass maps risk-level text to a badge class by keyword. It reads
// the wording, not the score, so it follows the label texts only as long
// as they keep these keywords.
func RiskClass(riskLevel string) string {
	switch {
	case strings.Contains(riskLevel, "कम") || strings.Contains(riskLevel, "Low"):
		return "risk-low"
	case strings.Contains(riskLevel, "मध्यम") || strings.Contains(riskLevel, "Medium"):
		return "risk-medium"
	default:
		return "risk-high"
	}
}

// ════════════════════════════════════════════════════════════════════
// Report Data: flattened for rendering
// ════════════════════════════════════════════════════════════════════

// Data is the model shared by all renderers.
type Data struct {
	Title           string
	GeneratedAt     string // IST formatted
	CompanyName     string
	SectorLabel     string // empty when no sector was given
	Score           int
	ScoreClass      string
	GrowthPotential string
	RiskLevel       string
	RiskClass       string
	TimeHorizon     string
	Metrics         []MetricRow
	Strengths       []string
	Risks           []string
	Outlook         string
	Recommendation  string
}

// MetricRow is a label/value pair in the financial metrics section.
type MetricRow struct {
	Label string
	Value string
}

// BuildData flattens res for rendering.
func BuildData(res *models.AnalysisResult, opts Options) Data {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	label := opts.Sector
	if code, ok := sector.Parse(opts.Sector); ok {
		label = code.Info().Label
	}

	return Data{
		Title:           Title,
		GeneratedAt:     utils.FormatReportTime(now),
		CompanyName:     res.CompanyName,
		SectorLabel:     label,
		Score:           res.MultibaggerScore,
		ScoreClass:      ScoreClass(res.MultibaggerScore),
		GrowthPotential: res.GrowthPotential,
		RiskLevel:       res.RiskLevel,
		RiskClass:       RiskClass(res.RiskLevel),
		TimeHorizon:     res.TimeHorizon,
		Metrics: []MetricRow{
			{"Revenue Growth", res.FinancialMetrics.RevenueGrowth},
			{"Profit Margin", res.FinancialMetrics.ProfitMargin},
			{"Debt to Equity", res.FinancialMetrics.DebtToEquity},
			{"Return on Equity (ROE)", res.FinancialMetrics.ROE},
		},
		Strengths:      res.KeyStrengths,
		Risks:          res.Risks,
		Outlook:        res.IndustryOutlook,
		Recommendation: res.Recommendation,
	}
}

// ════════════════════════════════════════════════════════════════════
// Render
// ════════════════════════════════════════════════════════════════════

// Render writes res to w in opts.Format.
func Render(w io.Writer, res *models.AnalysisResult, opts Options) error {
	if res == nil {
		return fmt.Errorf("analysis is nil")
	}

	if opts.Format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(res)
	}

	data := BuildData(res, opts)
	switch opts.Format {
	case FormatText, "":
		_, err := io.WriteString(w, renderText(data))
		return err
	case FormatMarkdown:
		md, err := renderMarkdown(data)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	case FormatHTML:
		return renderHTML(w, data)
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}
}

// ════════════════════════════════════════════════════════════════════
// Plain-text renderer
// ════════════════════════════════════════════════════════════════════

func renderText(d Data) string {
	var sb strings.Builder
	line := strings.Repeat("═", 60)
	thinLine := strings.Repeat("─", 60)

	sb.WriteString("\n" + line + "\n")
	sb.WriteString(fmt.Sprintf("  %s\n", d.Title))
	sb.WriteString(fmt.Sprintf("  Generated: %s\n", d.GeneratedAt))
	sb.WriteString(line + "\n\n")

	sb.WriteString(fmt.Sprintf("  📊 %s - विश्लेषण रिपोर्ट\n", d.CompanyName))
	if d.SectorLabel != "" {
		sb.WriteString(fmt.Sprintf("  Sector: %s\n", d.SectorLabel))
	}
	sb.WriteString(thinLine + "\n")

	sb.WriteString(fmt.Sprintf("  %-24s %d/100\n", "Multibagger Score:", d.Score))
	sb.WriteString(fmt.Sprintf("  %-24s %s\n", "Growth Potential:", d.GrowthPotential))
	sb.WriteString(fmt.Sprintf("  %-24s %s\n", "Risk Level:", d.RiskLevel))
	sb.WriteString(fmt.Sprintf("  %-24s %s\n", "Investment Horizon:", d.TimeHorizon))
	sb.WriteString(thinLine + "\n")

	sb.WriteString("\n  ■ 💰 Financial Metrics\n")
	for _, m := range d.Metrics {
		sb.WriteString(fmt.Sprintf("    %-24s %s\n", m.Label+":", m.Value))
	}
	sb.WriteString(thinLine + "\n")

	writeList := func(title string, items []string) {
		sb.WriteString(fmt.Sprintf("\n  ■ %s\n", title))
		for _, it := range items {
			sb.WriteString(fmt.Sprintf("    • %s\n", it))
		}
		sb.WriteString(thinLine + "\n")
	}
	writeList("✨ प्रमुख शक्तियां (Key Strengths)", d.Strengths)
	writeList("⚠️ जोखिम कारक (Risk Factors)", d.Risks)

	sb.WriteString("\n  ■ 🏭 Industry Outlook\n")
	sb.WriteString(fmt.Sprintf("  %s\n", d.Outlook))
	sb.WriteString(thinLine + "\n")

	sb.WriteString("\n  ★ 💡 सिफारिश (Recommendation)\n")
	sb.WriteString(fmt.Sprintf("  %s\n", d.Recommendation))

	sb.WriteString("\n" + line + "\n")
	sb.WriteString(fmt.Sprintf("  %s\n", Disclaimer))
	sb.WriteString(line + "\n")

	return sb.String()
}

// Disclaimer closes every report.
const Disclaimer = "Disclaimer: Illustrative output only. Not financial advice. Always consult a SEBI-registered advisor."

package web

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/seenimoa/multibagger/internal/sector"
)

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := fs.ReadFile(DistFS(), name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

func indexDoc(t *testing.T) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(readFile(t, "index.html")))
	if err != nil {
		t.Fatalf("parse index.html: %v", err)
	}
	return doc
}

func TestDistFSContents(t *testing.T) {
	for _, name := range []string{"index.html", "app.js", "style.css"} {
		if _, err := fs.Stat(DistFS(), name); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestIndexPage(t *testing.T) {
	doc := indexDoc(t)

	if got := doc.Find("title").Text(); got != "Indian Multibagger Stock Predictor" {
		t.Errorf("title: got %q", got)
	}
	if lang, _ := doc.Find("html").Attr("lang"); lang != "hi" {
		t.Errorf("lang: got %q, want hi", lang)
	}

	btn := doc.Find("#analyze-btn")
	if _, disabled := btn.Attr("disabled"); !disabled {
		t.Error("analyze button should start disabled")
	}
	if typ, _ := btn.Attr("type"); typ != "submit" {
		t.Errorf("button type: got %q, want submit", typ)
	}

	for _, id := range []string{"loading", "results"} {
		if _, hidden := doc.Find("#" + id).Attr("hidden"); !hidden {
			t.Errorf("#%s should start hidden", id)
		}
	}

	for _, id := range []string{
		"result-title", "score", "growth", "risk-badge", "horizon",
		"revenue-growth", "profit-margin", "debt-to-equity", "roe",
		"strengths", "risks", "outlook", "recommendation",
	} {
		if doc.Find("#"+id).Length() != 1 {
			t.Errorf("missing #%s", id)
		}
	}
}

func TestSectorOptionsMatchTable(t *testing.T) {
	opts := indexDoc(t).Find("#sector option")
	all := sector.All()

	if opts.Length() != len(all)+1 {
		t.Fatalf("options: got %d, want %d", opts.Length(), len(all)+1)
	}
	if v, _ := opts.First().Attr("value"); v != "" {
		t.Errorf("first option should be the empty placeholder, got %q", v)
	}

	opts.Slice(1, opts.Length()).Each(func(i int, s *goquery.Selection) {
		want := all[i]
		if v, _ := s.Attr("value"); v != want.Code {
			t.Errorf("option %d value: got %q, want %q", i, v, want.Code)
		}
		if got := s.Text(); got != want.Label {
			t.Errorf("option %d label: got %q, want %q", i, got, want.Label)
		}
	})
}

func TestAppScript(t *testing.T) {
	js := readFile(t, "app.js")

	for _, want := range []string{
		"'/api/analyze'",
		"companyName.trim()",
		"response.ok",
		"विश्लेषण में त्रुटि हुई। कृपया पुनः प्रयास करें।",
		"विश्लेषण हो रहा है...",
	} {
		if !strings.Contains(js, want) {
			t.Errorf("app.js missing %q", want)
		}
	}
	if strings.Contains(js, "innerHTML") {
		t.Error("app.js should only write text content")
	}
}

// The page is plain JavaScript with no runtime in the test suite, so the
// blank-name guard is checked by its placement in the source: the button
// state derives from a trimmed name, and analyzeCompany returns on a blank
// name before any request is built.
func TestAppScriptBlankNameGuard(t *testing.T) {
	js := readFile(t, "app.js")

	canSubmit := js[strings.Index(js, "function canSubmit()"):]
	canSubmit = canSubmit[:strings.Index(canSubmit, "}")]
	if !strings.Contains(canSubmit, "!state.loading") || !strings.Contains(canSubmit, "state.companyName.trim() !== ''") {
		t.Errorf("canSubmit should require a non-blank name and no request in flight:\n%s", canSubmit)
	}
	if !strings.Contains(js, "el.button.disabled = !canSubmit();") {
		t.Error("button disabled state should follow canSubmit")
	}

	start := strings.Index(js, "function analyzeCompany()")
	if start < 0 {
		t.Fatal("analyzeCompany not found")
	}
	body := js[start:]
	guard := strings.Index(body, "if (!state.companyName.trim()) return;")
	fetchAt := strings.Index(body, "fetch(")
	if guard < 0 || fetchAt < 0 || guard > fetchAt {
		t.Errorf("blank-name guard must precede fetch (guard at %d, fetch at %d)", guard, fetchAt)
	}
	if loading := strings.Index(body, "state.loading = true"); loading < guard {
		t.Error("loading state must only be set after the blank-name guard")
	}
}

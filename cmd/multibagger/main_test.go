package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

// run executes the root command. Cobra keeps flag values between runs,
// so every analyze call passes the flags it depends on.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "multibagger "+version) {
		t.Errorf("version output: %q", out)
	}
}

func TestAnalyzeCommandJSON(t *testing.T) {
	args := []string{"analyze", "Larsen & Toubro", "--sector", "Infra", "--format", "json", "--seed", "42"}

	first, err := run(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	second, err := run(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same seed gave different reports:\n%s\n%s", first, second)
	}

	res := gjson.Parse(first)
	if got := res.Get("companyName").String(); got != "Larsen & Toubro" {
		t.Errorf("companyName: got %q", got)
	}
	if score := res.Get("multibaggerScore").Int(); score < 56 || score > 95 {
		t.Errorf("Infra score %d outside [56, 95]", score)
	}
	if n := res.Get("keyStrengths.#").Int(); n < 3 || n > 4 {
		t.Errorf("strengths: got %d", n)
	}
}

func TestAnalyzeCommandText(t *testing.T) {
	out, err := run(t, "analyze", "Infosys", "--sector", "IT", "--format", "text", "--seed", "1")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Infosys", "IT & Software", "/100"} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q", want)
		}
	}
}

func TestAnalyzeCommandErrors(t *testing.T) {
	if _, err := run(t, "analyze", "   ", "--format", "text", "--seed", "1"); !errors.Is(err, errBlankCompany) {
		t.Errorf("blank company: got %v, want %v", err, errBlankCompany)
	}
	if _, err := run(t, "analyze", "TCS", "--format", "pdf", "--seed", "1"); err == nil {
		t.Error("unknown format should fail")
	}
	if _, err := run(t, "analyze"); err == nil {
		t.Error("missing company argument should fail")
	}
}

func TestSectorsCommand(t *testing.T) {
	out, err := run(t, "sectors")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"IT & Software", "×1.15", "Infra", "×1.12", "generic", "×1.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("sectors output missing %q", want)
		}
	}
}

func TestStatusCommand(t *testing.T) {
	out, err := run(t, "status")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"System Status", "API Server:", "Time (IST):"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q", want)
		}
	}
}

package utils

import (
	"testing"
	"time"
)

func TestNowIST(t *testing.T) {
	now := NowIST()
	if now.Location().String() != "Asia/Kolkata" && now.Location().String() != "IST" {
		t.Errorf("NowIST() location = %s, want Asia/Kolkata or IST", now.Location().String())
	}
}

func TestFormatDateTimeIST(t *testing.T) {
	utc := time.Date(2026, 2, 18, 4, 30, 0, 0, time.UTC)
	if got, want := FormatDateTimeIST(utc), "2026-02-18 10:00:00 IST"; got != want {
		t.Errorf("FormatDateTimeIST = %q, want %q", got, want)
	}
}

func TestFormatReportTime(t *testing.T) {
	utc := time.Date(2026, 10, 17, 9, 34, 0, 0, time.UTC)
	if got, want := FormatReportTime(utc), "17 Oct 2026, 03:04 PM IST"; got != want {
		t.Errorf("FormatReportTime = %q, want %q", got, want)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"Infosys", false},
		{"  TCS  ", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.in); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestTrackerMarkers(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithWriter(&buf, false)

	p.Headline("Starting subdomain enumeration...")
	p.Phase("Fetching subdomains from %s...", "crt.sh")
	p.StartPhase("ignored", 3)
	p.Found("a.example.com")
	p.Error("Failed to fetch data from %s", "crt.sh")
	p.Info("plain")
	p.Increment()
	p.Complete()

	want := "[+] Starting subdomain enumeration...\n" +
		"[*] Fetching subdomains from crt.sh...\n" +
		"[FOUND] a.example.com\n" +
		"[ERROR] Failed to fetch data from crt.sh\n" +
		"plain\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestTrackerBar(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithWriter(&buf, true)

	p.StartPhase("Brute force", 4)
	p.Increment()
	p.Increment()
	p.Found("www.example.com")
	p.Complete()

	out := buf.String()
	if !strings.Contains(out, "(2/4)") {
		t.Errorf("expected intermediate progress in %q", out)
	}
	if !strings.Contains(out, "100% (4/4)") {
		t.Errorf("expected completed bar in %q", out)
	}
	if !strings.Contains(out, "\r[FOUND] www.example.com\n") {
		t.Errorf("found line should follow a cleared bar: %q", out)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30s"},
		{2*time.Hour + 5*time.Minute, "2h5m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

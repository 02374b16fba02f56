package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/resistanceisuseless/subsearch/internal/enumeration"
)

func TestWriteResultsSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdomains_found.txt")
	set := enumeration.NewResultSet("www.example.com", "api.example.com", "Mail.example.com", "api.example.com")

	if err := New(path).WriteResults(set); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Mail.example.com\napi.example.com\nwww.example.com\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestWriteResultsTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("stale.example.com\nother.example.com\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := New(path).WriteResults(enumeration.NewResultSet("a.example.com")); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "a.example.com\n" {
		t.Errorf("file = %q", data)
	}
}

func TestWriteResultsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := New(path).WriteResults(enumeration.ResultSet{}); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}

func TestWriteResultsUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
	if err := New(path).WriteResults(enumeration.NewResultSet("a.example.com")); err == nil {
		t.Error("expected error for unwritable path")
	}
}

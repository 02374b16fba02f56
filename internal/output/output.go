package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/resistanceisuseless/subsearch/internal/enumeration"
)

// Writer persists a result set as a sorted, newline-separated host list.
type Writer struct {
	path string
}

func New(path string) *Writer {
	return &Writer{
		path: path,
	}
}

func (w *Writer) Path() string {
	return w.path
}

// WriteResults creates or truncates the output file and writes one host per
// line in ascending order. An empty set produces an empty file.
func (w *Writer) WriteResults(results enumeration.ResultSet) error {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	for _, host := range results.Sorted() {
		if _, err := fmt.Fprintln(buf, host); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return file.Close()
}

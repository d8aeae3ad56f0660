package ingest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ctmerge/ctmerge/models"
)

// WriteFile writes the header followed by one line per record to filename.
func WriteFile(filename string, header []string, records []models.TradeRecord) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	return Write(file, header, records)
}

// Write renders the export by joining fields with commas directly. The
// stdlib csv writer would quote padded fields; the export format expects
// them reproduced byte-for-byte, header included.
func Write(w io.Writer, header []string, records []models.TradeRecord) error {
	var sb strings.Builder

	sb.WriteString(strings.Join(header, ","))
	sb.WriteByte('\n')

	for _, r := range records {
		sb.WriteString(strings.Join(r.Fields(), ","))
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

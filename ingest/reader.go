package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ctmerge/ctmerge/models"
)

// ErrMissingHeader is returned when the input yields no rows at all, so
// there is no header to echo into the output.
var ErrMissingHeader = errors.New("input has no header row")

// ReadFile reads a trade list export: the header row, kept verbatim, plus
// one parsed TradeRecord per data row in file order.
func ReadFile(filename string) ([]string, []models.TradeRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses a trade list export from r. Any malformed monetary field
// aborts the read with an error naming the field and data row.
func Read(r io.Reader) ([]string, []models.TradeRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // field count is checked per row with a row number in the error

	var header []string
	var records []models.TradeRecord
	rowNum := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv: %w", err)
		}

		if header == nil {
			header = row
			continue
		}

		rowNum++
		record, err := models.ParseRecord(row, rowNum)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, record)
	}

	if header == nil {
		return nil, nil, ErrMissingHeader
	}
	return header, records, nil
}

package ingest

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ctmerge/ctmerge/grouping"
	"github.com/ctmerge/ctmerge/models"
)

// DefaultBatchSize is the insert batch size for the database path; override
// with the BATCH_SIZE environment variable.
const DefaultBatchSize = 500

// getEnvInt returns environment variable as int or default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Processor runs the read-reduce-write pipeline over one export file.
type Processor struct {
	log zerolog.Logger
}

func NewProcessor(log zerolog.Logger) *Processor {
	return &Processor{log: log}
}

// ProcessFile merges inFile and writes the result to outFile, returning the
// number of exported records. Nothing is written when any stage fails.
func (p *Processor) ProcessFile(inFile, outFile string) (int, error) {
	header, read, merged, dropped, err := p.mergeFile(inFile)
	if err != nil {
		return 0, err
	}

	if err := WriteFile(outFile, header, merged); err != nil {
		return 0, err
	}

	p.log.Info().
		Int("read", read).
		Int("dropped", dropped).
		Int("exported", len(merged)).
		Str("output", outFile).
		Msg("merge completed")

	return len(merged), nil
}

// ProcessToDB merges inFile and stores the result in the database instead
// of a file, returning the number of stored records.
func (p *Processor) ProcessToDB(inFile string, db *gorm.DB) (int, error) {
	_, read, merged, dropped, err := p.mergeFile(inFile)
	if err != nil {
		return 0, err
	}

	trades := make([]models.MergedTrade, 0, len(merged))
	for i, r := range merged {
		trade, err := models.NewMergedTrade(r)
		if err != nil {
			return 0, fmt.Errorf("merged record %d: %w", i+1, err)
		}
		trades = append(trades, trade)
	}

	if len(trades) > 0 {
		batchSize := getEnvInt("BATCH_SIZE", DefaultBatchSize)
		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.CreateInBatches(trades, batchSize).Error
		})
		if err != nil {
			return 0, fmt.Errorf("failed to store merged trades: %w", err)
		}
	}

	p.log.Info().
		Int("read", read).
		Int("dropped", dropped).
		Int("stored", len(trades)).
		Msg("ingest completed")

	return len(trades), nil
}

// mergeFile reads inFile and folds consecutive same-group records. The pass
// is strictly ordered: grouping only ever joins adjacent records, so there
// is no parallel variant.
func (p *Processor) mergeFile(inFile string) (header []string, read int, merged []models.TradeRecord, dropped int, err error) {
	header, records, err := ReadFile(inFile)
	if err != nil {
		return nil, 0, nil, 0, err
	}

	rd := grouping.NewReducer()
	merged = make([]models.TradeRecord, 0, len(records))
	for _, r := range records {
		if out, ok := rd.Push(r); ok {
			merged = append(merged, out)
		}
	}
	if last, ok := rd.Flush(); ok {
		merged = append(merged, last)
	}

	return header, len(records), merged, rd.Dropped(), nil
}

package ingest

import (
	"log/slog"

	"github.com/mfranklin/equity-data/internal/record"
)

// Validate converts loose rows into canonical records, preserving input
// order. A row that fails conversion is dropped and counted; the batch is
// never rejected wholesale. Returns the surviving records and the number
// dropped.
func Validate[T any](kind string, rows []record.Row, convert func(record.Row) (T, error), logger *slog.Logger) ([]T, int) {
	if logger == nil {
		logger = slog.Default()
	}

	valid := make([]T, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		rec, err := convert(row)
		if err != nil {
			dropped++
			logger.Debug("skipping invalid record", "kind", kind, "error", err)
			continue
		}
		valid = append(valid, rec)
	}

	if dropped > 0 {
		logger.Warn("dropped records failing validation",
			"kind", kind,
			"dropped", dropped,
			"kept", len(valid),
		)
	}
	return valid, dropped
}

package bulk

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mfranklin/equity-data/internal/record"
)

// LoadSymbols reads the symbol list from a CSV file with a "symbol" header
// column. Symbols are trimmed and upper-cased; order is preserved and
// duplicates are kept.
func LoadSymbols(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbols file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read symbols csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("symbols file %s is empty", path)
	}

	col := -1
	for i, name := range rows[0] {
		if name == "symbol" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("symbols file %s has no \"symbol\" column", path)
	}

	symbols := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if s := record.NormalizeSymbol(row[col]); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols, nil
}

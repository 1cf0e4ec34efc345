package ledger

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/tradelab/trading-support/internal/types"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Export writes the full trade history to path, newest first, in the
// requested format. CSV renders null fields as empty strings; JSON
// keeps them as null. Parent directories are created and an existing
// file is overwritten. Returns the path written.
func (s *Service) Export(path, format string) (string, error) {
	trades, err := s.db.ListTrades("")
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	switch format {
	case FormatJSON:
		err = exportJSON(path, trades)
	case FormatCSV:
		err = exportCSV(path, trades)
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return "", err
	}

	log.Info().
		Str("path", path).
		Str("format", format).
		Int("trades", len(trades)).
		Msg("trade history exported")

	return path, nil
}

func exportCSV(path string, trades []types.Trade) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(types.ExportFields); err != nil {
		return err
	}
	for i := range trades {
		if err := w.Write(trades[i].ExportRow()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func exportJSON(path string, trades []types.Trade) error {
	data, err := json.MarshalIndent(trades, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

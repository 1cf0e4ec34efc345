package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tradelab/trading-support/internal/types"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// renderTrade prints one trade as a label/value table in the shared
// export field order.
func renderTrade(t *types.Trade) string {
	row := t.ExportRow()
	width := 0
	for _, field := range types.ExportFields {
		if len(field) > width {
			width = len(field)
		}
	}

	var b strings.Builder
	for i, field := range types.ExportFields {
		label := labelStyle.Render(fmt.Sprintf("%-*s", width, field))
		value := row[i]
		if value == "" {
			value = mutedStyle.Render("-")
		}
		fmt.Fprintf(&b, "%s  %s\n", label, value)
	}
	return b.String()
}

// renderTradeList prints the columns that matter when scanning many
// trades at once.
func renderTradeList(trades []types.Trade) string {
	headers := []string{"id", "timestamp", "asset", "side", "entry_price", "size", "status", "realized_pnl"}
	rows := make([][]string, 0, len(trades))
	for i := range trades {
		full := trades[i].ExportRow()
		// indexes into ExportFields: id, timestamp, asset, side,
		// entry_price, size, status, realized_pnl
		rows = append(rows, []string{full[0], full[1], full[2], full[3], full[4], full[5], full[8], full[13]})
	}
	return renderTable(headers, rows)
}

func renderStats(stats *types.Stats) string {
	rows := [][]string{
		{"trades", fmt.Sprintf("%d", stats.Trades)},
		{"total_pnl", fmt.Sprintf("%.2f", stats.TotalPnL)},
		{"average_pnl", fmt.Sprintf("%.2f", stats.AveragePnL)},
		{"wins", fmt.Sprintf("%d", stats.Wins)},
		{"losses", fmt.Sprintf("%d", stats.Losses)},
		{"win_rate", fmt.Sprintf("%.2f", stats.WinRate)},
	}
	return renderTable([]string{"metric", "value"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", widths[i], h)))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderPnL(pnl float64) string {
	text := fmt.Sprintf("%.6f", pnl)
	if pnl > 0 {
		return winStyle.Render(text)
	}
	if pnl < 0 {
		return lossStyle.Render(text)
	}
	return text
}

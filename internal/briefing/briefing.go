// Package briefing renders the plain-text pre-trade message that is
// delivered to the notification channel and stored verbatim on the
// trade record.
package briefing

import (
	"fmt"
	"strings"
	"time"
)

// Plan carries everything the briefing mentions.
type Plan struct {
	Asset      string
	Direction  string
	Size       float64
	EntryPrice float64
	ExitLogic  string
	Reasoning  string
	Extra      string // optional notes line
}

// Render produces the briefing text. The layout is fixed: tooling on
// the receiving end keys off these labels.
func Render(p Plan) string {
	parts := []string{
		fmt.Sprintf("[%s] Manual trade plan", time.Now().UTC().Format(time.RFC3339)),
		fmt.Sprintf("Asset: %s / Direction: %s", p.Asset, strings.ToUpper(p.Direction)),
		fmt.Sprintf("Size: %v • Entry price: %v", p.Size, p.EntryPrice),
		fmt.Sprintf("Reasoning: %s", p.Reasoning),
		fmt.Sprintf("Exit logic: %s", p.ExitLogic),
	}
	if p.Extra != "" {
		parts = append(parts, fmt.Sprintf("Notes: %s", p.Extra))
	}
	return strings.Join(parts, "\n")
}

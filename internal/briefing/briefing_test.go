package briefing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	text := Render(Plan{
		Asset:      "BTCBRL",
		Direction:  "buy",
		Size:       0.01,
		EntryPrice: 300000,
		ExitLogic:  "sell at 310k or stop at 295k",
		Reasoning:  "support held three times",
	})

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 5)

	assert.Contains(t, lines[0], "Manual trade plan")
	assert.Equal(t, "Asset: BTCBRL / Direction: BUY", lines[1])
	assert.Equal(t, "Size: 0.01 • Entry price: 300000", lines[2])
	assert.Equal(t, "Reasoning: support held three times", lines[3])
	assert.Equal(t, "Exit logic: sell at 310k or stop at 295k", lines[4])
}

func TestRenderWithNotes(t *testing.T) {
	text := Render(Plan{
		Asset:      "ETHBRL",
		Direction:  "sell",
		Size:       2,
		EntryPrice: 10000,
		ExitLogic:  "cover on dip",
		Reasoning:  "overextended",
		Extra:      "watch funding rates",
	})

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Notes: watch funding rates", lines[5])
}

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/pokertracker/internal/hand"
	"github.com/lox/pokertracker/internal/statistics"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Padding(0, 1)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

// renderHands lists one row per parsed hand.
func renderHands(hands []*hand.Hand) string {
	t := newTable("Hand", "Time", "Table", "Stake", "Players", "Pot", "Rake", "Board")
	for _, h := range hands {
		ts := h.Timestamp.Format("2006-01-02 15:04:05")
		if h.TimestampFallback {
			ts += "*"
		}
		t.Row(
			h.ID,
			ts,
			h.Table,
			h.Stake,
			strconv.Itoa(len(h.ActivePlayers())),
			h.Currency+h.Pot.StringFixed(2),
			h.Currency+h.Rake.StringFixed(2),
			strings.Join(h.BoardCards(), " "),
		)
	}
	return t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	}).String()
}

func renderTotals(parsed, failed int) string {
	line := fmt.Sprintf("%d hands parsed", parsed)
	if failed > 0 {
		return line + ", " + warningStyle.Render(fmt.Sprintf("%d failed", failed))
	}
	return line
}

const netColumn = 2

// renderReport renders one row of frequency stats per player.
func renderReport(players []*statistics.PlayerStats) string {
	t := newTable("Player", "Hands", "Net", "bb/100", "VPIP", "PFR", "3Bet", "F3B", "CBet", "FCBet", "WTSD", "W$SD", "Steal", "FSteal")
	negative := make(map[int]bool, len(players))
	for i, ps := range players {
		negative[i] = ps.NetWon.IsNegative()
		t.Row(
			ps.Name,
			strconv.Itoa(ps.Hands()),
			ps.NetWon.StringFixed(2),
			fmt.Sprintf("%.1f", ps.Results.BBPer100()),
			percent(ps.VPIP),
			percent(ps.PFR),
			percent(ps.ThreeBet),
			percent(ps.FoldToThree),
			percent(ps.CbetFlop),
			percent(ps.FoldToCbet),
			percent(ps.WentToSD),
			percent(ps.WonAtSD),
			percent(ps.Steal),
			percent(ps.FoldToSteal),
		)
	}
	return t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col == netColumn && negative[row]:
			return lossStyle
		case col == netColumn:
			return winStyle
		}
		return cellStyle
	}).String()
}

func percent(c statistics.Counter) string {
	if c.Opportunities == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f", c.Percent())
}

// renderPlayerDetail shows the distribution of a player's results and a
// breakdown by position.
func renderPlayerDetail(ps *statistics.PlayerStats) string {
	r := &ps.Results
	low, high := r.ConfidenceInterval95()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", infoStyle.Render(fmt.Sprintf(
		"mean %.2f bb/hand, stddev %.2f, 95%% CI [%.2f, %.2f], median %.2f",
		r.Mean(), r.StdDev(), low, high, r.Median())))
	fmt.Fprintf(&b, "%s\n", infoStyle.Render(fmt.Sprintf(
		"p25 %.2f bb, p75 %.2f bb",
		r.Percentile(0.25), r.Percentile(0.75))))
	fmt.Fprintf(&b, "%s\n", infoStyle.Render(fmt.Sprintf(
		"showdown %.2f bb, non-showdown %.2f bb, largest pot %.1f bb",
		r.ShowdownBB, r.NonShowdownBB, r.MaxPotBB)))
	fmt.Fprintf(&b, "%s\n", infoStyle.Render(fmt.Sprintf(
		"big pots (>= %d bb): %d hands, %.2f bb",
		statistics.BigPotBB, r.BigPots, r.BigPotsBB)))

	reached := make([]string, 0, len(hand.Streets))
	for _, street := range hand.Streets {
		reached = append(reached, fmt.Sprintf("%s %d", street, r.StreetsReached[street]))
	}
	fmt.Fprintf(&b, "%s\n", infoStyle.Render("ended on: "+strings.Join(reached, ", ")))

	if err := r.Validate(); err != nil {
		fmt.Fprintf(&b, "%s\n", warningStyle.Render("inconsistent results: "+err.Error()))
	}

	positions := make([]hand.Position, 0, len(r.PositionResults))
	for pos := range r.PositionResults {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })

	t := newTable("Position", "Hands", "bb/hand")
	for _, pos := range positions {
		t.Row(string(pos), strconv.Itoa(r.PositionResults[pos].Hands), fmt.Sprintf("%.2f", r.PositionMean(pos)))
	}
	b.WriteString(t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	}).String())
	return b.String()
}

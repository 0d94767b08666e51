package parser

import (
	"testing"

	"github.com/lox/pokertracker/internal/hand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionize(t *testing.T) {
	secs := sectionize(splitLines(Split(loadSession(t))[0]))

	require.Len(t, secs.header, 8)
	assert.Equal(t, "Seat 6: Frank ($50 in chips)", secs.header[7])

	pre := secs.streets[hand.Preflop]
	assert.Equal(t, "Bob: posts small blind $0.25", pre[0])
	assert.Equal(t, "Carol: calls $1.50", pre[len(pre)-1])

	assert.Len(t, secs.streets[hand.Flop], 3)
	assert.Contains(t, secs.streets[hand.Turn], "Uncalled bet ($6) returned to Dave")
	_, ok := secs.streets[hand.River]
	assert.False(t, ok, "river was never dealt")

	assert.Equal(t, []string{"Qs", "7h", "2c"}, secs.board[hand.Flop])
	assert.Equal(t, []string{"9d"}, secs.board[hand.Turn])

	assert.Empty(t, secs.showdown)
	assert.Equal(t, "Total pot $9.25 | Rake $0.44", secs.summary[0])
}

func TestSectionizeShowdown(t *testing.T) {
	secs := sectionize(splitLines(Split(loadSession(t))[1]))

	for _, s := range hand.Postflop {
		lines, ok := secs.streets[s]
		assert.True(t, ok, "%s dealt", s)
		assert.Empty(t, lines)
	}
	assert.Equal(t, []string{"2h"}, secs.board[hand.River])
	require.Len(t, secs.showdown, 3)
	assert.Equal(t, "Frank collected $78.50 from pot", secs.showdown[2])
}

func TestMergeBoard(t *testing.T) {
	full := []string{"Ah", "8d", "3s", "Kc", "2h"}

	board := mergeBoard(map[hand.Street][]string{hand.Flop: {"Ah", "8d", "3s"}}, full)
	assert.Equal(t, map[hand.Street][]string{
		hand.Flop:  {"Ah", "8d", "3s"},
		hand.Turn:  {"Kc"},
		hand.River: {"2h"},
	}, board)

	board = mergeBoard(map[hand.Street][]string{}, full[:3])
	assert.Equal(t, map[hand.Street][]string{hand.Flop: {"Ah", "8d", "3s"}}, board)

	assert.Empty(t, mergeBoard(map[hand.Street][]string{}, nil))
}

func TestExtractSummaryMissingFields(t *testing.T) {
	s := New().extractSummary([]string{"Seat 1: Alice collected ($3)"}, "1")
	assert.True(t, s.pot.IsZero())
	assert.True(t, s.rake.IsZero())
	assert.Nil(t, s.board)

	s = New().extractSummary([]string{"Total pot $1,204.50 Main pot $1,000. Side pot $204.50. | Rake $3"}, "2")
	assert.True(t, money("1204.50").Equal(s.pot))
	assert.True(t, money("3").Equal(s.rake))
}

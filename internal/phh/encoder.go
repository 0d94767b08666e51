package phh

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/lox/pokertracker/internal/hand"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hh *HandHistory) error {
	if hh == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hh)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hh *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hh); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSections writes hands as a .phhs file: one numbered table per hand,
// starting at section first, separated by blank lines.
func WriteSections(w io.Writer, first int, hands []*HandHistory) error {
	for i, hh := range hands {
		if _, err := fmt.Fprintf(w, "[%d]\n", first+i); err != nil {
			return err
		}
		if err := Encode(w, hh); err != nil {
			return fmt.Errorf("phh: hand %s: %w", hh.HandID, err)
		}
		sep := "\n"
		if i < len(hands)-1 {
			sep = "\n\n"
		}
		if _, err := io.WriteString(w, sep); err != nil {
			return err
		}
	}
	return nil
}

// FormatAction converts a parsed action to a PHH action string for player
// index (0-based). Forced posts return false: they are captured by the
// antes and blinds fields instead.
func FormatAction(index int, a hand.Action) (string, bool) {
	player := fmt.Sprintf("p%d", index+1)
	switch a.Kind {
	case hand.Fold:
		return player + " f", true
	case hand.Check, hand.Call:
		return player + " cc", true
	case hand.Bet, hand.Raise:
		if !a.RaiseTo.IsPositive() {
			return "", false
		}
		return fmt.Sprintf("%s cbr %s", player, a.RaiseTo.String()), true
	case hand.PostSmallBlind, hand.PostBigBlind, hand.PostAnte:
		return "", false
	default:
		return fmt.Sprintf("# %s %s %s", player, a.Kind, a.Amount.String()), true
	}
}

package flipswap

import (
	"fmt"
	"io"

	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/pkg/errors"
)

// TextEncoder prints every position it is given.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder { return &TextEncoder{w: w} }

// Encode prints a header line followed by the board.
func (enc *TextEncoder) Encode(ms game.MetaState) error {
	st := ms.State()
	move := "none"
	if b, ok := st.(flip.Board); ok {
		move = b.LastMove().String()
	}
	_, err := fmt.Fprintf(enc.w, "%s, game %d, ply %d: %s. Score %d, %s to move\n%s\n",
		ms.Name(), ms.GameNumber(), ms.Ply(), move, st.Evaluate(), ms.ToMove(), st)
	return errors.WithStack(err)
}

func (enc *TextEncoder) Flush() error { return nil }

// MultiEncoder hands every position to all of its encoders.
type MultiEncoder []OutputEncoder

func (m MultiEncoder) Encode(ms game.MetaState) error {
	for _, enc := range m {
		if err := enc.Encode(ms); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiEncoder) Flush() error {
	for _, enc := range m {
		if err := enc.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Package gif renders the positions of a game into an animated gif.
package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/flipswap/game"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Game 10000, Ply 100: O to move`

	frameDelay = 50  // 100ths of a second
	finalDelay = 300 // the last frame stays up longer
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Encoder draws every position it is given as a frame of an animated gif. It implements flipswap.OutputEncoder.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	w   io.Writer

	maxH, maxW  int // maxHeight and maxWidth
	padH, padW  int // padding so everything don't start at the topleft
	initialized bool
}

// NewEncoder creates an encoder writing to w, with frames no larger than h by width pixels.
func NewEncoder(w io.Writer, h, width int) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: width,
		padH: 10,
		padW: 10,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		out: &gif.GIF{LoopCount: -1},
		w:   w,
	}
}

// Encode a position as a frame.
func (enc *Encoder) Encode(ms game.MetaState) error {
	st := ms.State()
	if st == nil {
		return errors.Errorf("game %d has no state at ply %d", ms.GameNumber(), ms.Ply())
	}
	rows := boardRows(st)
	caption := []string{
		ms.Name(),
		fmt.Sprintf("Game %d, Ply %d: %s to move", ms.GameNumber(), ms.Ply(), ms.ToMove()),
		fmt.Sprintf("Score %d", st.Evaluate()),
	}
	dy := int(math.Ceil(fontsize * lineheight * dpi / 72))

	if !enc.initialized {
		// lazy init of the frame size
		enc.Drawer.Face = truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})

		// first calculate how long the max length will be
		widths := lo.Map(append(append([]string{dummyLongString}, rows...), caption...), func(s string, _ int) int {
			return font.MeasureString(enc.Face, s).Ceil()
		})
		w := lo.Max(widths) + 2*enc.padW
		h := (len(rows)+len(caption)+1)*dy + 2*enc.padH

		w = lo.Min([]int{w, enc.maxW})
		h = lo.Min([]int{h, enc.maxH})

		if w == enc.maxW {
			enc.padW = 0
		}
		if h == enc.maxH {
			enc.padH = 0
		}

		enc.H = h
		enc.W = w
		enc.initialized = true
	}

	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	enc.Dst = im

	y := enc.padH + dy
	for _, s := range rows {
		enc.Dot = fixed.P(enc.padW, y)
		enc.DrawString(s)
		y += dy
	}
	y += dy / 2
	for _, s := range caption {
		enc.Dot = fixed.P(enc.padW, y)
		enc.DrawString(s)
		y += dy
	}

	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, frameDelay)
	return nil
}

// Flush writes the gif into the writer.
func (enc *Encoder) Flush() error {
	if len(enc.out.Image) == 0 {
		return errors.New("no frames to write")
	}
	enc.out.Delay[len(enc.out.Delay)-1] = finalDelay
	return errors.WithStack(gif.EncodeAll(enc.w, enc.out))
}

// Frames returns the number of frames encoded so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

func boardRows(st game.State) []string {
	w, h := st.BoardSize()
	cells := st.Board()
	rows := make([]string, 0, h)
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.Reset()
		for x := 0; x < w; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%s", cells[y*w+x])
		}
		rows = append(rows, sb.String())
	}
	return rows
}

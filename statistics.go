package flipswap

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var statisticsHeader = []string{"game", "ply", "player", "move", "score", "nodes"}

// Statistics collects the records of played games.
type Statistics struct {
	Records []Record
}

func (s *Statistics) Add(recs ...Record) { s.Records = append(s.Records, recs...) }

// Plies returns the number of plies over all games.
func (s *Statistics) Plies() int {
	return lo.SumBy(s.Records, func(r Record) int { return len(r.Plies) })
}

// Nodes returns the number of positions searched over all games.
func (s *Statistics) Nodes() int {
	return lo.SumBy(s.Records, func(r Record) int {
		return lo.SumBy(r.Plies, func(p Ply) int { return p.Nodes })
	})
}

// rows returns one row per ply.
func (s *Statistics) rows() [][]string {
	return lo.FlatMap(s.Records, func(r Record, _ int) [][]string {
		return lo.Map(r.Plies, func(p Ply, i int) []string {
			return []string{
				strconv.Itoa(r.Game),
				strconv.Itoa(i + 1),
				fmt.Sprintf("%v", p.Player),
				p.Move.String(),
				strconv.Itoa(p.Score),
				strconv.Itoa(p.Nodes),
			}
		})
	})
}

// WriteCSV writes a header, followed by one row per ply.
func (s *Statistics) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(statisticsHeader); err != nil {
		return errors.WithStack(err)
	}
	if err := cw.WriteAll(s.rows()); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Dump writes the CSV into filename.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	if err := s.WriteCSV(f); err != nil {
		return errors.WithMessage(err, fmt.Sprintf("unable to dump statistics into %q", filename))
	}
	return f.Close()
}

package search

import (
	"bytes"
	"fmt"
	"html"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/pkg/errors"
)

type pvNode struct {
	Ply    int
	Player game.Player // to move
	board  flip.Board
}

func (n pvNode) Move() string { return html.EscapeString(n.board.LastMove().String()) }
func (n pvNode) ToMove() string { return fmt.Sprintf("%v", n.Player) }
func (n pvNode) Score() int     { return n.board.Evaluate() }

func (n pvNode) State() string {
	var buf bytes.Buffer
	for i, c := range n.board.Board() {
		fmt.Fprintf(&buf, "%c", c)
		if (i+1)%flip.Width == 0 && i+1 != flip.Cells {
			fmt.Fprint(&buf, "<BR />")
		}
	}
	return buf.String()
}

// ToDot renders the principal variation from b, as found by the last Solve, as a graphviz digraph.
// Every position of the line is a node, every move an edge.
func (e *Engine) ToDot(b flip.Board, p game.Player) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("PV"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	line := append([]flip.Board{b}, e.PV(b, p)...)
	var buf bytes.Buffer
	for i, pos := range line {
		n := pvNode{Ply: i, Player: p, board: pos}
		buf.Reset()
		if err := tmpl.Execute(&buf, n); err != nil {
			return "", errors.Wrapf(err, "unable to render ply %d", i)
		}
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		if err := g.AddNode("PV", nodeName(i), attrs); err != nil {
			return "", errors.WithStack(err)
		}
		if i > 0 {
			label := map[string]string{"label": fmt.Sprintf("%q", pos.LastMove().String())}
			if err := g.AddEdge(nodeName(i-1), nodeName(i), true, label); err != nil {
				return "", errors.WithStack(err)
			}
		}
		p = p.Opponent()
	}
	return g.String(), nil
}

func nodeName(ply int) string { return fmt.Sprintf("ply%d", ply) }

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Ply</TD><TD>{{.Ply}}</TD></TR>
<TR><TD>Move</TD><TD>{{.Move}}</TD></TR>
<TR><TD>To move</TD><TD>{{.ToMove}}</TD></TR>
<TR><TD>Score</TD><TD>{{.Score}}</TD></TR>
<TR><TD>State</TD><TD>{{.State}}</TD></TR>
</TABLE>
>`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("pv").Parse(tmplRaw))
}

// Package chart draws ranked evaluation results as a PNG: one panel per
// candidate base pitch, laid out in two columns.
package chart

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/jsphweid/ragakey/constants"
	"github.com/jsphweid/ragakey/interval"
	"github.com/jsphweid/ragakey/model"
	"github.com/jsphweid/ragakey/pitch"
	"github.com/jsphweid/ragakey/scale"
)

const (
	columns    = 2
	margin     = 20
	lineHeight = 18
	titleSpace = 50
	textLines  = 2
)

type Request struct {
	Scale    model.Scale
	Results  []model.EvaluationResult
	Catalog  *interval.Catalog
	CellSize int
}

type layout struct {
	cell   float64
	panelW float64
	panelH float64
	width  int
	height int
}

func newLayout(cellSize, n int) layout {
	if cellSize <= 0 {
		cellSize = constants.DefaultCellSize
	}
	l := layout{cell: float64(cellSize)}
	l.panelW = l.cell*model.NumPitchClasses + 2*margin
	// score/notation lines, strip, western names below it
	l.panelH = textLines*lineHeight + l.cell + lineHeight + 2*margin
	rows := (n + columns - 1) / columns
	l.width = int(l.panelW) * columns
	l.height = titleSpace + int(l.panelH)*rows
	return l
}

// Size reports the pixel dimensions Render produces for a request.
func Size(req Request) (int, int) {
	l := newLayout(req.CellSize, len(req.Results))
	return l.width, l.height
}

func Render(w io.Writer, req Request) error {
	if req.Catalog == nil {
		req.Catalog = interval.Default()
	}
	l := newLayout(req.CellSize, len(req.Results))

	dc := gg.NewContext(l.width, l.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	title := fmt.Sprintf("Keys to play the scale %s at pitch %s",
		strings.Join(scale.SymbolStrings(req.Scale.Symbols), ", "), pitch.Name(req.Scale.Base))
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(l.width)/2, titleSpace/2, 0.5, 0.5)

	for i, r := range req.Results {
		x := float64(i%columns) * l.panelW
		y := titleSpace + float64(i/columns)*l.panelH
		drawPanel(dc, l, req.Catalog, r, x+margin, y+margin)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding chart: %w", err)
	}
	return nil
}

func RenderFile(path string, req Request) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return Render(f, req)
}

func drawPanel(dc *gg.Context, l layout, cat *interval.Catalog, r model.EvaluationResult, x, y float64) {
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("Score: %d", r.Score), x, y, 0, 1)
	dc.DrawStringAnchored(fmt.Sprintf("Raga's S = %s", r.Reference), x, y+lineHeight, 0, 1)
	dc.DrawStringAnchored("Indian notation: "+strings.Join(scale.SymbolStrings(r.Present), ", "),
		x+l.cell*model.NumPitchClasses, y+lineHeight, 1, 1)

	stripY := y + textLines*lineHeight
	names := pitch.NamesFrom(r.Base)
	for j := 0; j < model.NumPitchClasses; j++ {
		cx := x + float64(j)*l.cell
		if r.Pattern[j] == 1 {
			dc.SetRGB255(253, 141, 60)
		} else {
			dc.SetRGB255(255, 245, 235)
		}
		dc.DrawRectangle(cx, stripY, l.cell, l.cell)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(0.5)
		dc.DrawRectangle(cx, stripY, l.cell, l.cell)
		dc.Stroke()

		dc.DrawStringAnchored(string(cat.Symbol(model.PitchClass(j))), cx+l.cell/2, stripY+l.cell/2, 0.5, 0.5)
		dc.DrawStringAnchored(names[j], cx+l.cell/2, stripY+l.cell+lineHeight/2, 0.5, 0.5)
	}

	dc.DrawStringAnchored("Instrument base pitch: "+pitch.Name(r.Base),
		x+l.cell*model.NumPitchClasses/2, stripY+l.cell+lineHeight*1.5, 0.5, 0.5)
}

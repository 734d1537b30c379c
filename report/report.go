// Package report renders ranked evaluation results for the console.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsphweid/ragakey/mask"
	"github.com/jsphweid/ragakey/model"
	"github.com/jsphweid/ragakey/pitch"
	"github.com/jsphweid/ragakey/scale"
)

// Build assembles the structured form shared by JSON output and the HTTP API.
func Build(s model.Scale, m model.QualityMask, results []model.EvaluationResult) model.EvaluateResponse {
	res := model.EvaluateResponse{
		Western: pitch.NamesOf(s.Pitches),
		Mask:    mask.Format(m),
		Results: make([]model.RankedResult, len(results)),
	}
	for i, r := range results {
		res.Results[i] = model.RankedResult{EvaluationResult: r, BaseName: pitch.Name(r.Base)}
	}
	return res
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type Printer struct {
	w io.Writer
	s styles
}

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	score   lipgloss.Style
	on      lipgloss.Style
	off     lipgloss.Style
	err     lipgloss.Style
	dim     lipgloss.Style
}

func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w: w,
		s: styles{
			heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00BFFF")),
			label:   r.NewStyle().Bold(true),
			score:   r.NewStyle().Foreground(lipgloss.Color("#FFD700")),
			on:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#1E1E2E")).Background(lipgloss.Color("#FFA500")),
			off:     r.NewStyle().Foreground(lipgloss.Color("#636363")),
			err:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5252")),
			dim:     r.NewStyle().Faint(true),
		},
	}
}

func (p *Printer) Prompt(msg string) {
	fmt.Fprint(p.w, p.s.label.Render(msg)+" ")
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.s.dim.Render(msg))
}

func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, p.s.err.Render("error: ")+msg)
}

// Western restates the scale's notes as absolute pitches from its base.
func (p *Printer) Western(s model.Scale) {
	fmt.Fprintf(p.w, "\n%s\n", p.s.heading.Render("Scale notes in Western notation based on "+pitch.Name(s.Base)+":"))
	fmt.Fprintln(p.w, strings.Join(pitch.NamesOf(s.Pitches), ", "))
}

func (p *Printer) Results(results []model.EvaluationResult) {
	fmt.Fprintf(p.w, "\n%s\n", p.s.heading.Render("Base notes and corresponding series of 0s and 1s sorted by the number of good notes:"))
	for _, r := range results {
		p.Result(r)
	}
}

func (p *Printer) Result(r model.EvaluationResult) {
	fmt.Fprintf(p.w, "\n%s %s\n", p.s.label.Render("Base pitch for instrument:"), pitch.Name(r.Base))
	fmt.Fprintf(p.w, "%s %s\n", p.s.label.Render("Keys to play series:"), FormatPattern(r.Pattern))
	fmt.Fprintln(p.w, p.strip(r))
	fmt.Fprintf(p.w, "%s %s\n", p.s.label.Render("Score (number of good notes):"), p.s.score.Render(fmt.Sprint(r.Score)))
	fmt.Fprintf(p.w, "%s %s\n", p.s.label.Render("Indian notation:"), strings.Join(scale.SymbolStrings(r.Present), ", "))
	fmt.Fprintf(p.w, "%s %s on instrument\n", p.s.label.Render("Raga's S ="), r.Reference)
}

// strip draws the shifted western names with present notes highlighted.
func (p *Printer) strip(r model.EvaluationResult) string {
	cells := make([]string, 0, model.NumPitchClasses)
	for j, name := range pitch.NamesFrom(r.Base) {
		cell := fmt.Sprintf("%-2s", name)
		if r.Pattern[j] == 1 {
			cells = append(cells, p.s.on.Render(cell))
		} else {
			cells = append(cells, p.s.off.Render(cell))
		}
	}
	return strings.Join(cells, " ")
}

func FormatPattern(pattern model.Pattern) string {
	parts := make([]string, len(pattern))
	for i, v := range pattern {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (p *Printer) Catalog(symbols []model.IntervalSymbol) {
	fmt.Fprintln(p.w, p.s.heading.Render("Interval symbols:"))
	for i, sym := range symbols {
		fmt.Fprintf(p.w, "  %-2s %2d\n", sym, i)
	}
	fmt.Fprintln(p.w, p.s.heading.Render("Base pitches:"))
	fmt.Fprintln(p.w, "  "+strings.Join(pitch.Names(), " "))
}

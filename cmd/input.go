package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/ragakey/config"
	"github.com/jsphweid/ragakey/evaluate"
	"github.com/jsphweid/ragakey/interval"
	"github.com/jsphweid/ragakey/model"
	"github.com/jsphweid/ragakey/pitch"
	"github.com/jsphweid/ragakey/report"
	"github.com/jsphweid/ragakey/scale"
)

// run is one fully validated evaluation: resolved scale, the evaluator it was
// scored with, and the ranked results.
type run struct {
	Scale   model.Scale
	Mask    model.QualityMask
	Results []model.EvaluationResult
}

// evaluateInput validates every token before any scoring happens. The scale
// is checked before the base pitch, so a bad symbol is reported even when the
// base pitch is also wrong.
func evaluateInput(cfg config.Config, tokens []string, baseName string) (*run, error) {
	m, err := cfg.QualityMask()
	if err != nil {
		return nil, err
	}
	cat := interval.Default()
	if err := scale.Validate(cat, tokens); err != nil {
		return nil, err
	}
	base, err := pitch.Parse(baseName)
	if err != nil {
		return nil, err
	}
	s, err := scale.Resolve(cat, tokens, base)
	if err != nil {
		return nil, err
	}
	return &run{
		Scale:   s,
		Mask:    m,
		Results: evaluate.New(cat, m).Evaluate(s),
	}, nil
}

// promptInput asks for whatever was not given on the command line, scale
// first and then base pitch. An invalid scale ends the prompt before the base
// pitch is asked for.
func promptInput(in io.Reader, p *report.Printer, tokens []string, baseName string) ([]string, string, error) {
	r := bufio.NewReader(in)
	if len(tokens) == 0 {
		p.Info("Input the notes of the scale in Hindustani classical style (keys: S, r, R, g, G, m, M, P, d, D, n, N).")
		p.Prompt("Enter the notes separated by spaces:")
		line, err := readLine(r)
		if err != nil {
			return nil, "", fmt.Errorf("reading scale: %w", err)
		}
		tokens = scale.Parse(line)
	}
	if err := scale.Validate(interval.Default(), tokens); err != nil {
		return nil, "", err
	}
	if baseName == "" {
		p.Prompt("Enter the base pitch in Western notation (e.g., C, D#, A):")
		line, err := readLine(r)
		if err != nil {
			return nil, "", fmt.Errorf("reading base pitch: %w", err)
		}
		baseName = strings.TrimSpace(line)
	}
	return tokens, baseName, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

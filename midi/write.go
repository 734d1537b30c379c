package midi

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/ragakey/constants"
	"github.com/jsphweid/ragakey/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 96

// ScaleKeys voices a result's pattern as ascending MIDI keys starting from
// the candidate base above middle C, closing with the octave of the first
// note. An empty pattern gives no keys.
func ScaleKeys(r model.EvaluationResult) []uint8 {
	var keys []uint8
	root := constants.ExportBaseNote + int(r.Base)
	for j, v := range r.Pattern {
		if v == 1 {
			keys = append(keys, uint8(root+j))
		}
	}
	if len(keys) > 0 {
		keys = append(keys, keys[0]+model.NumPitchClasses)
	}
	return keys
}

// CreateScale builds a single-track SMF playing keys as quarter notes.
func CreateScale(keys []uint8) (*smf.SMF, error) {
	s := smf.New()
	ticks := smf.MetricTicks(ticksPerQuarter)
	s.TimeFormat = ticks

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(constants.ExportTempoBPM))
	for _, key := range keys {
		tr.Add(0, gomidi.NoteOn(0, key, constants.ExportVelocity))
		tr.Add(ticks.Ticks4th(), gomidi.NoteOff(0, key))
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("adding track: %w", err)
	}
	return s, nil
}

func WriteScale(w io.Writer, r model.EvaluationResult) error {
	s, err := CreateScale(ScaleKeys(r))
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi: %w", err)
	}
	return nil
}

func WriteScaleFile(path string, r model.EvaluationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteScale(f, r)
}

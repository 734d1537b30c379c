package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/ragakey/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading midi file %s: %w", filepath, err)
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// smf can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fmt.Errorf("parsing midi: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing midi: %w", err)
	}
	return res, nil
}

var ErrNoNotes = errors.New("midi file has no note-on events")

// PitchClasses collects the pitch class of every sounding note-on across all
// tracks. Note-ons with velocity 0 are note-offs and are skipped.
func PitchClasses(s *smf.SMF) (model.PitchClassSet, error) {
	var set model.PitchClassSet
	var found bool
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				set[int(key)%model.NumPitchClasses] = true
				found = true
			}
		}
	}
	if !found {
		return set, ErrNoNotes
	}
	return set, nil
}

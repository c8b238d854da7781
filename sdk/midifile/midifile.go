// Package midifile extracts pitch structures from Standard MIDI Files.
package midifile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/miditools/muse/sdk/music"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile parses a .mid file from disk.
func ReadFile(path string) (s *smf.SMF, e error) {
	// The smf reader panics on some corrupt files.
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

// noteEvent is one note boundary with its absolute offset in microseconds.
type noteEvent struct {
	offset    int64
	isNoteOff bool
	key       uint8
}

// ExtractChords reads a .mid file and returns every distinct set of two or
// more simultaneously sounding notes, in time order, voiced low to high.
// Keys below the supported keyboard range are skipped.
func ExtractChords(path string) ([]music.Chord, error) {
	s, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	var events []noteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			var channel, key, velocity uint8
			switch {
			case ev.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, noteEvent{offset: s.TimeAt(absTicks), key: key})
			case ev.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, noteEvent{offset: s.TimeAt(absTicks), isNoteOff: true, key: key})
			}
		}
	}

	// Note-offs first at equal offsets so releases never inflate the next set.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff
	})

	var chords []music.Chord
	pressed := make(map[uint8]bool)
	var lastKey string
	for _, ev := range events {
		if ev.isNoteOff {
			delete(pressed, ev.key)
			continue
		}
		pressed[ev.key] = true

		chord, ok := chordFromPressed(pressed)
		if !ok {
			continue
		}
		key := chord.String()
		if key == lastKey {
			continue
		}
		lastKey = key
		chords = append(chords, chord)
	}
	return chords, nil
}

// chordFromPressed maps the sounding key set to a voiced chord.
func chordFromPressed(pressed map[uint8]bool) (music.Chord, bool) {
	keys := make([]uint8, 0, len(pressed))
	for key := range pressed {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	notes := make([]music.Note, 0, len(keys))
	for _, key := range keys {
		note, err := music.NoteFromKey(key)
		if err != nil {
			continue
		}
		notes = append(notes, note)
	}
	if len(notes) < 2 {
		return music.Chord{}, false
	}
	return music.NewChord(notes), true
}

// Package catalog holds the static training track definitions. Tracks are
// compiled in and read-only at runtime; Validate runs at startup so a broken
// definition fails fast instead of surfacing mid-quiz.
package catalog

import (
	"fmt"
	"sort"
)

// PassingThreshold is the minimum quiz score (percent) required to complete a section.
const PassingThreshold = 80

// Question is one multiple-choice quiz question.
type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"` // zero-based index into Options, never serialized
}

// Section is one unit of a track: content plus a quiz.
type Section struct {
	Number  int        `json:"number"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Quiz    []Question `json:"quiz"`
}

// Track is an ordered list of sections a learner works through.
type Track struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Get returns the track with the given id.
func Get(trackID string) (Track, bool) {
	t, ok := tracks[trackID]
	return t, ok
}

// All returns every registered track, ordered by id.
func All() []Track {
	out := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Section returns the numbered section of the track.
func (t Track) Section(number int) (Section, bool) {
	for _, s := range t.Sections {
		if s.Number == number {
			return s, true
		}
	}
	return Section{}, false
}

// Validate checks the structural invariants of a track definition: section
// numbers contiguous from 1, at least one question per section, options
// present and the correct-answer index in range, question ids unique.
func Validate(t Track) error {
	if t.ID == "" {
		return fmt.Errorf("track has no id")
	}
	if len(t.Sections) == 0 {
		return fmt.Errorf("track %q has no sections", t.ID)
	}

	seenIDs := make(map[string]bool)
	for i, s := range t.Sections {
		if s.Number != i+1 {
			return fmt.Errorf("track %q: section at position %d has number %d, want %d", t.ID, i, s.Number, i+1)
		}
		if len(s.Quiz) == 0 {
			return fmt.Errorf("track %q section %d has no quiz questions", t.ID, s.Number)
		}
		for _, q := range s.Quiz {
			if q.ID == "" {
				return fmt.Errorf("track %q section %d has a question with no id", t.ID, s.Number)
			}
			if seenIDs[q.ID] {
				return fmt.Errorf("track %q: duplicate question id %q", t.ID, q.ID)
			}
			seenIDs[q.ID] = true
			if q.Prompt == "" {
				return fmt.Errorf("track %q question %q has no prompt", t.ID, q.ID)
			}
			if len(q.Options) < 2 {
				return fmt.Errorf("track %q question %q needs at least 2 options", t.ID, q.ID)
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				return fmt.Errorf("track %q question %q: correct answer index %d out of range", t.ID, q.ID, q.CorrectAnswer)
			}
		}
	}
	return nil
}

// ValidateAll validates every registered track. Called from main at startup.
func ValidateAll() error {
	for _, t := range tracks {
		if err := Validate(t); err != nil {
			return err
		}
	}
	return nil
}

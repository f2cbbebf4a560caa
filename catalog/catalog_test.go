package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTracksAreValid(t *testing.T) {
	require.NoError(t, ValidateAll())
	assert.NotEmpty(t, All())
}

func TestGet(t *testing.T) {
	track, ok := Get("recruiter")
	require.True(t, ok)
	assert.Equal(t, "recruiter", track.ID)
	assert.NotEmpty(t, track.Sections)

	_, ok = Get("no-such-track")
	assert.False(t, ok)
}

func TestTrackSectionLookup(t *testing.T) {
	track, ok := Get("recruiter")
	require.True(t, ok)

	section, ok := track.Section(1)
	require.True(t, ok)
	assert.Equal(t, 1, section.Number)
	assert.NotEmpty(t, section.Quiz)

	_, ok = track.Section(99)
	assert.False(t, ok)
}

func validTrack() Track {
	return Track{
		ID:    "test",
		Title: "Test Track",
		Sections: []Section{
			{
				Number: 1,
				Title:  "Only Section",
				Quiz: []Question{
					{ID: "q1", Prompt: "Pick A", Options: []string{"A", "B"}, CorrectAnswer: 0},
				},
			},
		},
	}
}

func TestValidateRejectsBrokenDefinitions(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Validate(validTrack()))
	})

	t.Run("no sections", func(t *testing.T) {
		track := validTrack()
		track.Sections = nil
		assert.Error(t, Validate(track))
	})

	t.Run("non-contiguous section numbers", func(t *testing.T) {
		track := validTrack()
		track.Sections[0].Number = 2
		assert.Error(t, Validate(track))
	})

	t.Run("section without questions", func(t *testing.T) {
		track := validTrack()
		track.Sections[0].Quiz = nil
		assert.Error(t, Validate(track))
	})

	t.Run("correct answer out of range", func(t *testing.T) {
		track := validTrack()
		track.Sections[0].Quiz[0].CorrectAnswer = 5
		assert.Error(t, Validate(track))
	})

	t.Run("duplicate question ids", func(t *testing.T) {
		track := validTrack()
		track.Sections[0].Quiz = append(track.Sections[0].Quiz, track.Sections[0].Quiz[0])
		assert.Error(t, Validate(track))
	})
}

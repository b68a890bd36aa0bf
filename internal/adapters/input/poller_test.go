package input

import (
	"errors"
	"testing"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEdgeDetectorReportsOnlyRisingEdges(t *testing.T) {
	var detector EdgeDetector

	levels := []bool{false, true, true, true, false, true, false, false}
	want := []bool{false, true, false, false, false, true, false, false}
	for i, level := range levels {
		assert.Equal(t, want[i], detector.Update(level), "sample %d", i)
	}
}

func TestPollerHeldButtonClicksOnce(t *testing.T) {
	samples := []Sample{
		{PrimaryDown: true, Cursor: domain.Vec2{X: 1, Y: 2}},
		{PrimaryDown: true, Cursor: domain.Vec2{X: 3, Y: 4}},
		{PrimaryDown: false, CancelDown: true},
		{PrimaryDown: true},
	}
	next := 0
	poller := NewPoller(func() (Sample, error) {
		sample := samples[next]
		next++
		return sample, nil
	}, nil)

	poller.Poll()
	assert.True(t, poller.PrimaryClicked())
	assert.True(t, poller.PrimaryClicked(), "latched for the whole frame")
	assert.Equal(t, domain.Vec2{X: 1, Y: 2}, poller.Cursor())
	assert.False(t, poller.CancelPressed())

	poller.Poll()
	assert.False(t, poller.PrimaryClicked())
	assert.Equal(t, domain.Vec2{X: 3, Y: 4}, poller.Cursor())

	poller.Poll()
	assert.False(t, poller.PrimaryClicked())
	assert.True(t, poller.CancelPressed())

	poller.Poll()
	assert.True(t, poller.PrimaryClicked())
}

func TestPollerSampleErrorReleasesButtonsAndKeepsCursor(t *testing.T) {
	fail := false
	poller := NewPoller(func() (Sample, error) {
		if fail {
			return Sample{}, errors.New("desktop locked")
		}
		return Sample{PrimaryDown: true, CancelDown: true, Cursor: domain.Vec2{X: 9, Y: 9}}, nil
	}, nil)

	poller.Poll()
	fail = true
	poller.Poll()

	assert.False(t, poller.PrimaryClicked())
	assert.False(t, poller.CancelPressed())
	assert.Equal(t, domain.Vec2{X: 9, Y: 9}, poller.Cursor())
}

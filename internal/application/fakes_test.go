package application

import (
	"time"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
)

var baseTime = time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

type mapLookup struct {
	indexes map[string]int
	calls   int
}

func (l *mapLookup) TaskIndexByID(id string) int {
	l.calls++
	if index, ok := l.indexes[id]; ok {
		return index
	}
	return -1
}

type fakeInput struct {
	clicked bool
	cursor  domain.Vec2
	cancel  bool
}

func (i *fakeInput) PrimaryClicked() bool { return i.clicked }
func (i *fakeInput) Cursor() domain.Vec2  { return i.cursor }
func (i *fakeInput) CancelPressed() bool  { return i.cancel }

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type nopRenderer struct{ calls int }

func (r *nopRenderer) Render(ports.Surface) { r.calls++ }

func actorAt(task domain.TaskIndex) domain.ActorSnapshot {
	return domain.ActorSnapshot{
		CurrentTask: task,
		Position:    domain.Vec2{X: 500, Y: 500},
		Parameters:  domain.ActorParameters{MaxRunSpeed: 200, MaxChargedAcceleration: 2300},
	}
}

package application

import (
	"time"

	"github.com/bnema/honkbreach/internal/domain"
)

type FrameRecord struct {
	Index      int
	At         time.Duration
	Task       domain.TaskIndex
	Signal     domain.AgitationCause
	State      domain.TakeoverState
	Transition bool
	Combo      int
	Exited     bool
}

type ReplayResult struct {
	Scenario    string
	Frames      []FrameRecord
	Transitions int
	Exited      bool
	Original    *domain.WallpaperSettings
	Final       domain.WallpaperSettings
}

// ReplayRecorder samples a Prank after every frame of a replay.
type ReplayRecorder struct {
	prank  *Prank
	result ReplayResult
	prev   domain.TakeoverState
}

func NewReplayRecorder(scenario string, prank *Prank) *ReplayRecorder {
	return &ReplayRecorder{
		prank:  prank,
		result: ReplayResult{Scenario: scenario},
		prev:   prank.Takeover().State(),
	}
}

func (r *ReplayRecorder) Record(index int, at time.Duration, actor domain.ActorSnapshot, exited bool) {
	state := r.prank.Takeover().State()
	transition := state != r.prev
	r.prev = state

	if transition {
		r.result.Transitions++
	}
	if exited {
		r.result.Exited = true
	}

	r.result.Frames = append(r.result.Frames, FrameRecord{
		Index:      index,
		At:         at,
		Task:       actor.CurrentTask,
		Signal:     r.prank.LastSignal(),
		State:      state,
		Transition: transition,
		Combo:      r.prank.Provocation().ComboCount,
		Exited:     exited,
	})
}

// Result finishes the run with the desktop settings left behind.
func (r *ReplayRecorder) Result(final domain.WallpaperSettings) ReplayResult {
	result := r.result
	result.Frames = append([]FrameRecord(nil), r.result.Frames...)
	result.Final = final
	if original, ok := r.prank.Takeover().Original(); ok {
		result.Original = &original
	}

	return result
}

package domain

import (
	"strings"
	"time"
)

const (
	RunSpeedThreshold            = 0.95
	ChargedAccelerationThreshold = 0.80
)

type AgitationCause uint8

const (
	CauseTask AgitationCause = 1 << iota
	CauseSpeed
	CauseAcceleration
	CauseOverride
)

func (c AgitationCause) Agitated() bool {
	return c != 0
}

func (c AgitationCause) String() string {
	if c == 0 {
		return "calm"
	}

	parts := make([]string, 0, 4)
	for _, entry := range []struct {
		cause AgitationCause
		label string
	}{
		{CauseTask, "task"},
		{CauseSpeed, "speed"},
		{CauseAcceleration, "acceleration"},
		{CauseOverride, "override"},
	} {
		if c&entry.cause != 0 {
			parts = append(parts, entry.label)
		}
	}

	return strings.Join(parts, "+")
}

// Agitation reports every reason the actor counts as agitated right now.
// A zero overrideUntil means no override was ever armed.
func Agitation(snapshot ActorSnapshot, tasks TaskIndexSet, overrideUntil, now time.Time) AgitationCause {
	var cause AgitationCause
	if tasks.Contains(snapshot.CurrentTask) {
		cause |= CauseTask
	}
	if snapshot.Speed >= snapshot.Parameters.MaxRunSpeed*RunSpeedThreshold {
		cause |= CauseSpeed
	}
	if snapshot.Acceleration >= snapshot.Parameters.MaxChargedAcceleration*ChargedAccelerationThreshold {
		cause |= CauseAcceleration
	}
	if !overrideUntil.IsZero() && !now.After(overrideUntil) {
		cause |= CauseOverride
	}

	return cause
}

func IsAgitated(snapshot ActorSnapshot, tasks TaskIndexSet, overrideUntil, now time.Time) bool {
	return Agitation(snapshot, tasks, overrideUntil, now).Agitated()
}

func (c AgitationCause) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

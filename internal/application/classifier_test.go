package application

import (
	"testing"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTaskClassifierResolvesOnce(t *testing.T) {
	lookup := &mapLookup{indexes: map[string]int{"AttackMouse": 7, "TrackMud": 3, "StealMouse": 7}}
	classifier := NewTaskClassifier(lookup, domain.AggressiveTaskNames(), nil)

	first := classifier.Resolve()
	assert.Equal(t, []domain.TaskIndex{3, 7}, first.Sorted())
	assert.Equal(t, 6, lookup.calls)

	lookup.indexes["ChargeMouse"] = 9
	second := classifier.Resolve()
	assert.Equal(t, []domain.TaskIndex{3, 7}, second.Sorted())
	assert.Equal(t, 6, lookup.calls)
}

func TestTaskClassifierEmptyResultIsValid(t *testing.T) {
	lookup := &mapLookup{}
	classifier := NewTaskClassifier(lookup, domain.AggressiveTaskNames(), nil)

	set := classifier.Resolve()
	assert.Zero(t, set.Len())

	classifier.Resolve()
	assert.Equal(t, 6, lookup.calls)
}

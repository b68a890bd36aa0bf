package domain

import "sort"

type TaskIndex int

var aggressiveTaskNames = []string{
	"AttackMouse",
	"ChargeMouse",
	"CollectWindow",
	"TrackMud",
	"StealMouse",
	"RunToTarget",
}

// AggressiveTaskNames lists the host task identifiers that count as aggressive.
func AggressiveTaskNames() []string {
	names := make([]string, len(aggressiveTaskNames))
	copy(names, aggressiveTaskNames)
	return names
}

type TaskIndexSet struct {
	indexes map[TaskIndex]struct{}
}

// NewTaskIndexSet drops negative indexes, which hosts use for unknown names.
func NewTaskIndexSet(indexes ...TaskIndex) TaskIndexSet {
	set := TaskIndexSet{indexes: make(map[TaskIndex]struct{}, len(indexes))}
	for _, index := range indexes {
		if index < 0 {
			continue
		}
		set.indexes[index] = struct{}{}
	}

	return set
}

func (s TaskIndexSet) Contains(index TaskIndex) bool {
	_, ok := s.indexes[index]
	return ok
}

func (s TaskIndexSet) Len() int {
	return len(s.indexes)
}

func (s TaskIndexSet) Sorted() []TaskIndex {
	indexes := make([]TaskIndex, 0, len(s.indexes))
	for index := range s.indexes {
		indexes = append(indexes, index)
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })

	return indexes
}

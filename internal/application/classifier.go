package application

import (
	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"go.uber.org/zap"
)

// TaskClassifier resolves aggressive task names to host indexes once per
// process and then serves the cached set.
type TaskClassifier struct {
	lookup   ports.TaskLookup
	names    []string
	resolved domain.Resolution[domain.TaskIndexSet]
	logger   *zap.Logger
}

func NewTaskClassifier(lookup ports.TaskLookup, names []string, logger *zap.Logger) *TaskClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TaskClassifier{
		lookup: lookup,
		names:  append([]string(nil), names...),
		logger: logger,
	}
}

func (c *TaskClassifier) Resolve() domain.TaskIndexSet {
	if set, ok := c.resolved.Get(); ok {
		return set
	}

	indexes := make([]domain.TaskIndex, 0, len(c.names))
	for _, name := range c.names {
		index := c.lookup.TaskIndexByID(name)
		if index < 0 {
			c.logger.Debug("aggressive task not known to host", zap.String("task", name))
			continue
		}
		indexes = append(indexes, domain.TaskIndex(index))
	}

	set := domain.NewTaskIndexSet(indexes...)
	c.resolved = domain.Resolved(set)
	c.logger.Debug("aggressive tasks resolved", zap.Int("count", set.Len()))

	return set
}

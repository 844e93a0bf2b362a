package view

import (
	"sync"

	"github.com/user/riskdash/pkg/model"
)

// State holds the committed display list. Commits carry the resolve epoch that
// produced them so a slow, stale response can never overwrite newer data.
type State struct {
	mu       sync.Mutex
	epoch    uint64
	strategy string
	findings []model.Finding
}

// Commit installs a resolved list unless a newer epoch was already committed.
// It reports whether the commit was accepted.
func (s *State) Commit(epoch uint64, strategy string, findings []model.Finding) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch < s.epoch {
		return false
	}
	s.epoch = epoch
	s.strategy = strategy
	s.findings = findings
	return true
}

// Findings returns the currently committed display list.
func (s *State) Findings() []model.Finding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findings
}

// Strategy returns the name of the resolution strategy that produced the
// committed list, empty before the first commit.
func (s *State) Strategy() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategy
}

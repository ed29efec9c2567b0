package services

import (
	"sync"
	"time"
)

// WarningCategory groups system warnings by subsystem.
type WarningCategory string

const (
	WarningCategoryDatabase  WarningCategory = "database"
	WarningCategoryRedis     WarningCategory = "redis"
	WarningCategoryLLM       WarningCategory = "llm"
	WarningCategoryScheduler WarningCategory = "scheduler"
	WarningCategoryUpstream  WarningCategory = "upstream"
)

// SystemWarning is one degraded-but-running condition surfaced on the
// readiness endpoint.
type SystemWarning struct {
	Category  WarningCategory `json:"category"`
	Message   string          `json:"message"`
	Details   string          `json:"details,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// SystemWarningsService is an in-memory registry of degraded conditions.
// Components add warnings when an optional dependency misbehaves and clear
// the category once it recovers; /ready reports the current set.
type SystemWarningsService struct {
	mu       sync.RWMutex
	warnings map[WarningCategory]SystemWarning
}

// NewSystemWarningsService builds an empty registry.
func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{warnings: make(map[WarningCategory]SystemWarning)}
}

// Add records or replaces the warning for a category.
func (s *SystemWarningsService) Add(category WarningCategory, message, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings[category] = SystemWarning{
		Category:  category,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// Clear removes the warning for a category, if present.
func (s *SystemWarningsService) Clear(category WarningCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.warnings, category)
}

// List returns the current warnings, newest first.
func (s *SystemWarningsService) List() []SystemWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SystemWarning, 0, len(s.warnings))
	for _, w := range s.warnings {
		out = append(out, w)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Timestamp.After(out[j-1].Timestamp); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

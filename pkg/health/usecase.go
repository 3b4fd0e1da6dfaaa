package health

import "context"

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Status is the result of one checker.
type Status struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) ([]Status, bool)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

// Ready runs every checker, even after a failure, so the probe shows all of them.
func (s *service) Ready(ctx context.Context) ([]Status, bool) {
	statuses := make([]Status, 0, len(s.checkers))
	ready := true
	for _, ch := range s.checkers {
		st := Status{Name: ch.Name(), OK: true}
		if err := ch.Check(ctx); err != nil {
			st.OK = false
			st.Error = err.Error()
			ready = false
		}
		statuses = append(statuses, st)
	}
	return statuses, ready
}

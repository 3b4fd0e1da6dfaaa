package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Outcome classifies how a capability call ended.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeInvalid    Outcome = "invalid_input"
	OutcomeModelError Outcome = "model_error"
	OutcomePartial    Outcome = "partial_output"
)

// Entry is the metadata of one capability call. User text and model output
// are never stored.
type Entry struct {
	ID         uuid.UUID     `json:"id"`
	Capability string        `json:"capability"`
	Language   string        `json:"language"`
	Outcome    Outcome       `json:"outcome"`
	Model      string        `json:"model"`
	Duration   time.Duration `json:"durationNs"`
	Error      string        `json:"error,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Recorder persists entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Repository описывает порт для сохранения и чтения журнала вызовов.
type Repository interface {
	Recorder
	ListRecent(ctx context.Context, capability string, limit, offset int) ([]Entry, error)
}

// Nop discards every entry. Used when no database is configured.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error { return nil }

func (Nop) ListRecent(context.Context, string, int, int) ([]Entry, error) { return []Entry{}, nil }

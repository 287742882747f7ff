package history

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Generation kinds.
const (
	KindDraft       = "draft"
	KindTranslate   = "translate"
	KindConsolidate = "consolidate"
	KindAsk         = "ask"
)

// Generation is one completed (or failed) call to the provider on behalf of
// a project.
type Generation struct {
	ID          string
	CreatedAt   time.Time
	Project     string
	Kind        string
	Prompt      string
	Response    string
	Model       string
	AssistantID string
	ThreadID    string
	DurationMs  int64
	Status      string // "completed" or "failed"
	LastError   string
}

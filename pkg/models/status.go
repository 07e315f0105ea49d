package models

import "time"

// FetchPhase enumerates the lifecycle of one logical fetch.
type FetchPhase int

const (
	FetchIdle FetchPhase = iota
	FetchPending
	FetchSucceeded
	FetchFailed
)

// String returns the phase name for logs.
func (p FetchPhase) String() string {
	switch p {
	case FetchIdle:
		return "idle"
	case FetchPending:
		return "pending"
	case FetchSucceeded:
		return "succeeded"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchStatus tracks the state of one logical resource fetch. It drives
// loading indicators and suppresses duplicate in-flight requests; it is not
// user-facing data itself.
type FetchStatus struct {
	Phase      FetchPhase `json:"phase"`
	At         time.Time  `json:"at"`
	Reason     string     `json:"reason,omitempty"`
	RetryCount int        `json:"retry_count,omitempty"`
}

// Pending returns a FetchStatus marking a fetch as in flight.
func Pending() FetchStatus {
	return FetchStatus{Phase: FetchPending, At: time.Now()}
}

// Succeeded returns a FetchStatus for a completed fetch.
func Succeeded() FetchStatus {
	return FetchStatus{Phase: FetchSucceeded, At: time.Now()}
}

// Failed returns a FetchStatus for a terminally failed fetch.
func Failed(reason string, retries int) FetchStatus {
	return FetchStatus{Phase: FetchFailed, At: time.Now(), Reason: reason, RetryCount: retries}
}

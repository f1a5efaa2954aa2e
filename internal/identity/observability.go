package identity

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single identity-provider call.
// Endpoint is the operation URL with the API key stripped; Provider is
// set only for federated sign-in calls.
type CallEvent struct {
	Op        string
	Provider  string
	Endpoint  string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about identity calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes identity call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	line := fmt.Sprintf("[%s] auth_call op=%s endpoint=%s latency_ms=%d status=%s",
		ts, event.Op, event.Endpoint, event.LatencyMs, status)
	if event.Provider != "" {
		line += " provider=" + event.Provider
	}
	fmt.Fprintln(o.w, line)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// Package infra serves the operational endpoints of the relay.
package infra

import (
	"time"

	"github.com/mandalnilabja/cliprelay/internal/relay"
)

// Handlers holds the dependencies for infrastructure HTTP handlers.
type Handlers struct {
	Relay     *relay.Relay
	StartTime time.Time
}

// New creates a new instance of infrastructure handlers.
func New(r *relay.Relay, startTime time.Time) *Handlers {
	return &Handlers{
		Relay:     r,
		StartTime: startTime,
	}
}

package realtime

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Session
type Option func(*options)

type options struct {
	handshakeTimeout time.Duration
	buffer           int
	initiation       map[string]any
	logger           zerolog.Logger
}

// WithHandshakeTimeout bounds the websocket handshake
func WithHandshakeTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.handshakeTimeout = d
		}
	}
}

// WithBuffer sets the capacity of each event channel. Events arriving while
// a channel is full are dropped.
func WithBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.buffer = n
		}
	}
}

// WithInitiationData sends conversation_initiation_client_data (dynamic
// variables, config overrides) right after connecting
func WithInitiationData(data map[string]any) Option {
	return func(o *options) {
		o.initiation = data
	}
}

// WithLogger sets the logger for protocol diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

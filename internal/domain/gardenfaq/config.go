package gardenfaq

import "time"

// Config holds runtime knobs for the FAQ service.
type Config struct {
	// LoadTimeout bounds a single document fetch. Zero means no timeout.
	LoadTimeout time.Duration
}

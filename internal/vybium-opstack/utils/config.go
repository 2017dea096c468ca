package utils

import "fmt"

// Config represents the configuration for execution-trace generation
type Config struct {
	// InitTraceLength is the trace length allocated at stack construction.
	// The trace doubles from here whenever execution outgrows it.
	InitTraceLength int

	// PowerOfTwoTrace requires InitTraceLength to be a power of two, which
	// keeps every doubled length a power of two as well. STARK evaluation
	// domains need power-of-two trace lengths.
	PowerOfTwoTrace bool
}

// MinInitTraceLength is the smallest allowed initial trace length; mutators
// write one row ahead of the clock.
const MinInitTraceLength = 2

// DefaultConfig returns a default trace-generation configuration
func DefaultConfig() *Config {
	return &Config{
		InitTraceLength: 64,
		PowerOfTwoTrace: true,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.InitTraceLength < MinInitTraceLength {
		return fmt.Errorf("initial trace length must be at least %d, got %d",
			MinInitTraceLength, c.InitTraceLength)
	}

	if c.PowerOfTwoTrace && !IsPowerOfTwo(c.InitTraceLength) {
		return fmt.Errorf("initial trace length must be a power of 2, got %d", c.InitTraceLength)
	}

	return nil
}

// WithInitTraceLength sets the initial trace length
func (c *Config) WithInitTraceLength(length int) *Config {
	c.InitTraceLength = length
	return c
}

// WithPowerOfTwoTrace sets whether the initial trace length must be a power of 2
func (c *Config) WithPowerOfTwoTrace(required bool) *Config {
	c.PowerOfTwoTrace = required
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	return &Config{
		InitTraceLength: c.InitTraceLength,
		PowerOfTwoTrace: c.PowerOfTwoTrace,
	}
}

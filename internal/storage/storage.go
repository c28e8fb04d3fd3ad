package storage

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"sync"
)

// FallbackExitCode replaces any exit code that cannot be read as a number.
const FallbackExitCode = 1

// Defaults is the process-wide termination policy applied when a call site
// does not override a flag.
type Defaults struct {
	Exit     bool `yaml:"exit"`
	Silent   bool `yaml:"silent"`
	ExitCode int  `yaml:"exit_code"`
}

// Partial describes an update to Defaults. Nil fields are left untouched.
// ExitCode accepts any value and is normalised by SetDefaults.
type Partial struct {
	Exit     *bool
	Silent   *bool
	ExitCode any
}

// Store provides access to the termination defaults used by the terminator.
type Store interface {
	GetDefaults() Defaults
	SetDefaults(p Partial)
}

// MemoryStore keeps the defaults in-memory and guards access with a RWMutex.
type MemoryStore struct {
	mu       sync.RWMutex
	defaults Defaults
}

// NewMemoryStore initialises storage with InitialDefaults.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		defaults: InitialDefaults(),
	}
}

// InitialDefaults returns the defaults in effect at process start.
func InitialDefaults() Defaults {
	return Defaults{
		Exit:     true,
		Silent:   false,
		ExitCode: FallbackExitCode,
	}
}

// Bool returns a pointer to v, for building a Partial inline.
func Bool(v bool) *bool {
	return &v
}

// GetDefaults returns a snapshot of the current defaults.
func (s *MemoryStore) GetDefaults() Defaults {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.defaults
}

// SetDefaults merges the present fields of p into the stored defaults.
// It never fails: an exit code that is not a number becomes FallbackExitCode.
func (s *MemoryStore) SetDefaults(p Partial) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Exit != nil {
		s.defaults.Exit = *p.Exit
	}
	if p.Silent != nil {
		s.defaults.Silent = *p.Silent
	}
	if p.ExitCode != nil {
		s.defaults.ExitCode = CoerceExitCode(p.ExitCode)
	}
}

// CoerceExitCode converts v to an exit code, returning FallbackExitCode when
// v has no numeric reading.
func CoerceExitCode(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return fromInt64(n)
	case uint:
		return fromUint64(uint64(n))
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return fromUint64(uint64(n))
	case uint64:
		return fromUint64(n)
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		return fromString(n.String())
	case string:
		return fromString(n)
	case *int:
		if n == nil {
			return FallbackExitCode
		}
		return *n
	}
	return FallbackExitCode
}

func fromString(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FallbackExitCode
	}
	if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return fromInt64(value)
	}
	if value, err := strconv.ParseFloat(raw, 64); err == nil {
		return fromFloat(value)
	}
	return FallbackExitCode
}

func fromInt64(n int64) int {
	if n > math.MaxInt || n < math.MinInt {
		return FallbackExitCode
	}
	return int(n)
}

func fromUint64(n uint64) int {
	if n > math.MaxInt {
		return FallbackExitCode
	}
	return int(n)
}

func fromFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return FallbackExitCode
	}
	f = math.Trunc(f)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return FallbackExitCode
	}
	return int(f)
}

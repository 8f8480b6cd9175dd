package requests

import (
	"errors"
	"fmt"

	"cpusched/internal/core"
)

// Limits on a single simulation. The schedulers loop once per slice and scan
// every process per slice, so both bound the work a request can cause.
const (
	MaxProcesses  = 1024
	MaxTotalBurst = 1_000_000
)

var (
	ErrNoBursts         = errors.New("at least one burst is required")
	ErrNegativeBurst    = errors.New("burst must not be negative")
	ErrTooManyProcesses = errors.New("too many processes")
	ErrBurstTooLarge    = errors.New("total burst too large")
)

type ScheduleRequests struct {
	Bursts      []int `json:"bursts" yaml:"bursts"`
	TimeQuantum int   `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// Validate checks the bursts, and the time quantum when withQuantum is set.
func (r *ScheduleRequests) Validate(withQuantum bool) error {
	if len(r.Bursts) == 0 {
		return ErrNoBursts
	}
	if len(r.Bursts) > MaxProcesses {
		return fmt.Errorf("%w: %d, limit %d", ErrTooManyProcesses, len(r.Bursts), MaxProcesses)
	}
	var total int
	for i, burst := range r.Bursts {
		if burst < 0 {
			return fmt.Errorf("P%d: %w", i, ErrNegativeBurst)
		}
		// compared before adding so the sum cannot overflow
		if burst > MaxTotalBurst-total {
			return fmt.Errorf("P%d: %w, limit %d", i, ErrBurstTooLarge, MaxTotalBurst)
		}
		total += burst
	}
	if withQuantum && r.TimeQuantum < 1 {
		return fmt.Errorf("%w, got %d", core.ErrInvalidQuantum, r.TimeQuantum)
	}
	return nil
}

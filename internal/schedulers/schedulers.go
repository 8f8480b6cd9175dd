package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cpusched/internal/requests"
	"cpusched/internal/responses"
)

type Algorithm string

const (
	FCFS Algorithm = "fcfs"
	RR   Algorithm = "rr"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithms lists the supported algorithms in reporting order.
var Algorithms = []Algorithm{FCFS, RR}

// Schedule runs a single algorithm over a fresh PCB store built from request.
func Schedule(logger *slog.Logger, algorithm Algorithm, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	switch algorithm {
	case FCFS:
		return ScheduleFirstComeFirstServe(logger, request)
	case RR:
		return ScheduleRoundRobin(logger, request)
	default:
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// ScheduleAll runs every algorithm on the same request. Each run owns its own
// store, so they run concurrently.
func ScheduleAll(logger *slog.Logger, request *requests.ScheduleRequests) ([]responses.ScheduleResponse, error) {
	if err := request.Validate(true); err != nil {
		return nil, err
	}

	results := make([]responses.ScheduleResponse, len(Algorithms))
	errs := make([]error, len(Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, algorithm := range Algorithms {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			results[i], errs[i] = Schedule(logger.With("algorithm", string(algorithm)), algorithm, request)
		}(i, algorithm)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

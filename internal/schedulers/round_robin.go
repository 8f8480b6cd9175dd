package schedulers

import (
	"fmt"
	"log/slog"

	"github.com/markphelps/optional"

	"cpusched/internal/core"
	"cpusched/internal/requests"
	"cpusched/internal/responses"
	"cpusched/internal/util"
)

// NextRoundRobin returns the next process after current that still has burst
// left, wrapping around the store. It is empty once every process is done.
func NextRoundRobin(current int, procs core.Processes) optional.Int {
	if procs.Done() {
		return optional.Int{}
	}
	next := (current + 1) % len(procs)
	for procs[next].BurstLeft <= 0 {
		next = (next + 1) % len(procs)
	}
	return optional.NewInt(next)
}

// RoundRobin rotates through the processes in ProcessId order, running each
// for at most timeQuantum units, and returns the total simulated time.
func RoundRobin(procs core.Processes, timeQuantum int) (int, error) {
	return roundRobin(procs, timeQuantum, nil)
}

func roundRobin(procs core.Processes, timeQuantum int, onRun runHook) (int, error) {
	if timeQuantum < 1 {
		return 0, fmt.Errorf("%w, got %d", core.ErrInvalidQuantum, timeQuantum)
	}

	current := 0
	for current < len(procs) && procs[current].BurstLeft <= 0 {
		current++
	}
	if current == len(procs) {
		return 0, nil
	}

	var totalTime int
	for {
		runTime := min(procs[current].BurstLeft, timeQuantum)
		onRun.call(current, totalTime, runTime)
		procs.Run(current, runTime)
		totalTime += runTime

		next := NextRoundRobin(current, procs)
		if !next.Present() {
			return totalTime, nil
		}
		current = next.MustGet()
	}
}

func ScheduleRoundRobin(logger *slog.Logger, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := request.Validate(true); err != nil {
		return responses.ScheduleResponse{}, err
	}
	logger.Info("running roundRobin algorithm", "time_quantum", request.TimeQuantum, "processes", len(request.Bursts), "total_burst", util.Sum(request.Bursts))

	procs := core.NewProcesses(request.Bursts)
	firstRuns := newFirstRuns(len(procs))
	totalTime, err := roundRobin(procs, request.TimeQuantum, firstRuns.record)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	logger.Debug("roundRobin finished", "total_time", totalTime, "waits", procs.Waits())

	return generateResponse(RR, request.TimeQuantum, request.Bursts, procs, firstRuns, totalTime)
}

package schedulers

import (
	"log/slog"

	"cpusched/internal/core"
	"cpusched/internal/requests"
	"cpusched/internal/responses"
	"cpusched/internal/util"
)

// FirstComeFirstServe runs every process to completion in ProcessId order
// and returns the total simulated time.
func FirstComeFirstServe(procs core.Processes) int {
	return firstComeFirstServe(procs, nil)
}

func firstComeFirstServe(procs core.Processes, onRun runHook) int {
	var totalTime int
	for i := range procs {
		burst := procs[i].BurstLeft
		onRun.call(i, totalTime, burst)
		procs.Run(i, burst)
		totalTime += burst
	}
	return totalTime
}

func ScheduleFirstComeFirstServe(logger *slog.Logger, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := request.Validate(false); err != nil {
		return responses.ScheduleResponse{}, err
	}
	logger.Info("running fcfs algorithm", "processes", len(request.Bursts), "total_burst", util.Sum(request.Bursts))

	procs := core.NewProcesses(request.Bursts)
	firstRuns := newFirstRuns(len(procs))
	totalTime := firstComeFirstServe(procs, firstRuns.record)
	logger.Debug("fcfs finished", "total_time", totalTime, "waits", procs.Waits())

	return generateResponse(FCFS, 0, request.Bursts, procs, firstRuns, totalTime)
}

package schedulers

import (
	"cpusched/internal/core"
	"cpusched/internal/responses"
	"cpusched/internal/util"
)

func generateResponse(algorithm Algorithm, timeQuantum int, bursts []int, procs core.Processes, firstRuns *firstRuns, totalTime int) (responses.ScheduleResponse, error) {
	averageWaitingTime, err := procs.AverageWait()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	proccessDetails := make([]responses.ProcessResponse, 0, len(procs))
	responseTimes := make([]int, 0, len(procs))
	turnAroundTimes := make([]int, 0, len(procs))
	for _, proccess := range procs {
		details := generateProcessDetails(proccess, bursts[proccess.ProcessId], firstRuns.responseTime(proccess.ProcessId))
		proccessDetails = append(proccessDetails, details)
		responseTimes = append(responseTimes, details.ResponseTime)
		turnAroundTimes = append(turnAroundTimes, details.TurnAroundTime)
	}

	var throughput float64
	if totalTime > 0 {
		throughput = float64(len(procs)) / float64(totalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TimeQuantum:           timeQuantum,
		TotalTime:             totalTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   util.Average(responseTimes),
		AverageTurnAroundTime: util.Average(turnAroundTimes),
		CpuThroughput:         throughput,
		Details:               proccessDetails,
	}, nil
}

// every process arrives at time zero, so turnaround is wait plus burst
func generateProcessDetails(proccess core.Process, burst, responseTime int) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      proccess.ProcessId,
		BurstTime:      burst,
		WaitingTime:    proccess.Wait,
		ResponseTime:   responseTime,
		TurnAroundTime: proccess.Wait + burst,
	}
}

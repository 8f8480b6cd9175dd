package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id" yaml:"process_id"`
	BurstTime      int `json:"burst_time" yaml:"burst_time"`
	WaitingTime    int `json:"waiting_time" yaml:"waiting_time"`
	ResponseTime   int `json:"response_time" yaml:"response_time"`
	TurnAroundTime int `json:"turn_around_time" yaml:"turn_around_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm" yaml:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time" yaml:"total_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	CpuThroughput         float64           `json:"cpu_throughput" yaml:"cpu_throughput"`
	Details               []ProcessResponse `json:"details" yaml:"details"`
}

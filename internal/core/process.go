package core

import (
	"errors"

	"cpusched/internal/util"
)

var (
	ErrNoProcesses    = errors.New("no processes")
	ErrInvalidQuantum = errors.New("time quantum must be at least 1")
)

// Process is the simulation state of one process. ProcessId is also its
// position in the store and the scheduling order key.
type Process struct {
	ProcessId int
	BurstLeft int
	Wait      int
}

// Processes is the PCB store of a single scheduling run.
type Processes []Process

// NewProcesses builds one Process per burst, in input order. Bursts are not
// validated.
func NewProcesses(bursts []int) Processes {
	procs := make(Processes, len(bursts))
	for i, burst := range bursts {
		procs[i] = Process{
			ProcessId: i,
			BurstLeft: burst,
		}
	}
	return procs
}

// Run runs process current for amount units of simulated time. Every other
// process that still has burst left waits for the same amount.
func (p Processes) Run(current, amount int) {
	p[current].BurstLeft -= amount
	for i := range p {
		if i != current && p[i].BurstLeft > 0 {
			p[i].Wait += amount
		}
	}
}

func (p Processes) Done() bool {
	for _, proccess := range p {
		if proccess.BurstLeft > 0 {
			return false
		}
	}
	return true
}

func (p Processes) Waits() []int {
	waits := make([]int, len(p))
	for i, proccess := range p {
		waits[i] = proccess.Wait
	}
	return waits
}

func (p Processes) AverageWait() (float64, error) {
	if len(p) == 0 {
		return 0, ErrNoProcesses
	}
	return util.Average(p.Waits()), nil
}

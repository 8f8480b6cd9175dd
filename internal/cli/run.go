package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cpusched/internal/requests"
	"cpusched/internal/schedulers"
)

func newFcfsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fcfs <burst>...",
		Short: "Run first-come-first-serve scheduling",
		Args:  minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bursts, err := parseBursts(args)
			if err != nil {
				return err
			}
			return runAlgorithm(cmd, schedulers.FCFS, &requests.ScheduleRequests{Bursts: bursts})
		},
	}
}

func newRrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rr <quantum> <burst>...",
		Short: "Run round-robin scheduling with the given time quantum",
		Args:  minimumArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := parseQuantumRequest(args)
			if err != nil {
				return err
			}
			return runAlgorithm(cmd, schedulers.RR, request)
		},
	}
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all <quantum> <burst>...",
		Short: "Run every algorithm on the same bursts",
		Args:  minimumArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := parseQuantumRequest(args)
			if err != nil {
				return err
			}
			results, err := schedulers.ScheduleAll(logger, request)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), flagOutput, flagVerbose, request.Bursts, results...)
		},
	}
}

func runAlgorithm(cmd *cobra.Command, algorithm schedulers.Algorithm, request *requests.ScheduleRequests) error {
	response, err := schedulers.Schedule(logger, algorithm, request)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), flagOutput, flagVerbose, request.Bursts, response)
}

func parseQuantumRequest(args []string) (*requests.ScheduleRequests, error) {
	timeQuantum, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid time quantum %q", args[0])
	}
	bursts, err := parseBursts(args[1:])
	if err != nil {
		return nil, err
	}
	return &requests.ScheduleRequests{Bursts: bursts, TimeQuantum: timeQuantum}, nil
}

func parseBursts(args []string) ([]int, error) {
	bursts := make([]int, len(args))
	for i, arg := range args {
		burst, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid burst %q for P%d", arg, i)
		}
		bursts[i] = burst
	}
	return bursts, nil
}

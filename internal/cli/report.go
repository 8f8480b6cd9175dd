package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"cpusched/internal/responses"
	"cpusched/internal/schedulers"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func writeReport(w io.Writer, format string, verbose bool, bursts []int, results ...responses.ScheduleResponse) error {
	switch strings.ToLower(format) {
	case outputText:
		for i, response := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeText(w, verbose, bursts, response)
		}
		return nil
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, verbose bool, bursts []int, response responses.ScheduleResponse) {
	if response.Algorithm == string(schedulers.RR) {
		fmt.Fprintf(w, "Using RR(%d).\n\n", response.TimeQuantum)
	} else {
		fmt.Fprintf(w, "Using %s\n\n", strings.ToUpper(response.Algorithm))
	}

	for i, burst := range bursts {
		fmt.Fprintf(w, "Accepted P%d: Burst %d\n", i, burst)
	}

	if verbose {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-5s  %-6s  %-6s  %-8s  %s\n", "PID", "BURST", "WAIT", "RESPONSE", "TURNAROUND")
		for _, p := range response.Details {
			fmt.Fprintf(w, "%-5d  %-6d  %-6d  %-8d  %d\n", p.ProcessId, p.BurstTime, p.WaitingTime, p.ResponseTime, p.TurnAroundTime)
		}
		fmt.Fprintf(w, "Total time: %d\n", response.TotalTime)
	}

	fmt.Fprintf(w, "Average wait time: %.2f\n", response.AverageWaitingTime)
}

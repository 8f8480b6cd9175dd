package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"cpusched/internal/core"
	"cpusched/internal/requests"
	"cpusched/internal/responses"
)

// execute runs the root command and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFcfs(t *testing.T) {
	stdout, _, err := execute(t, "fcfs", "5", "3", "8")
	if err != nil {
		t.Fatalf("fcfs: %v", err)
	}

	want := "Using FCFS\n\n" +
		"Accepted P0: Burst 5\n" +
		"Accepted P1: Burst 3\n" +
		"Accepted P2: Burst 8\n" +
		"Average wait time: 4.33\n"
	if stdout != want {
		t.Errorf("output:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestRr(t *testing.T) {
	stdout, _, err := execute(t, "rr", "4", "5", "3", "8")
	if err != nil {
		t.Fatalf("rr: %v", err)
	}

	if !strings.HasPrefix(stdout, "Using RR(4).\n\nAccepted P0: Burst 5\n") {
		t.Errorf("unexpected header:\n%s", stdout)
	}
	if !strings.HasSuffix(stdout, "Average wait time: 6.33\n") {
		t.Errorf("unexpected average:\n%s", stdout)
	}
}

func TestVerbose(t *testing.T) {
	stdout, _, err := execute(t, "fcfs", "--verbose", "5", "3", "8")
	if err != nil {
		t.Fatalf("fcfs: %v", err)
	}
	if !strings.Contains(stdout, "TURNAROUND") || !strings.Contains(stdout, "Total time: 16\n") {
		t.Errorf("expected process table, got:\n%s", stdout)
	}
}

func TestAll(t *testing.T) {
	stdout, _, err := execute(t, "all", "4", "5", "3", "8")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if !strings.Contains(stdout, "Using FCFS\n") || !strings.Contains(stdout, "Using RR(4).\n") {
		t.Errorf("expected both algorithms, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Average wait time: 4.33\n") || !strings.Contains(stdout, "Average wait time: 6.33\n") {
		t.Errorf("expected both averages, got:\n%s", stdout)
	}
}

func TestJSONOutput(t *testing.T) {
	stdout, _, err := execute(t, "-o", "json", "rr", "4", "5", "3", "8")
	if err != nil {
		t.Fatalf("rr: %v", err)
	}

	var response responses.ScheduleResponse
	if err := json.Unmarshal([]byte(stdout), &response); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout)
	}
	if response.TotalTime != 16 || response.TimeQuantum != 4 {
		t.Errorf("response = %+v", response)
	}
}

func TestYAMLOutput(t *testing.T) {
	stdout, _, err := execute(t, "--output", "yaml", "all", "4", "5", "3", "8")
	if err != nil {
		t.Fatalf("all: %v", err)
	}

	var results []responses.ScheduleResponse
	if err := yaml.Unmarshal([]byte(stdout), &results); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout)
	}
	if len(results) != 2 || results[1].Details[0].WaitingTime != 7 {
		t.Errorf("results = %+v", results)
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no args", nil, errMissingArguments},
		{"fcfs without bursts", []string{"fcfs"}, errMissingArguments},
		{"rr without bursts", []string{"rr", "4"}, errMissingArguments},
		{"all without bursts", []string{"all", "4"}, errMissingArguments},
		{"zero quantum", []string{"rr", "0", "5"}, core.ErrInvalidQuantum},
		{"negative burst", []string{"fcfs", "5", "--", "-3"}, requests.ErrNegativeBurst},
		{"overflowing fcfs bursts", []string{"-o", "json", "fcfs", "9223372036854775807", "1"}, requests.ErrBurstTooLarge},
		{"overflowing rr bursts", []string{"rr", "4", "9223372036854775807", "9223372036854775807"}, requests.ErrBurstTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if stdout != "" {
				t.Errorf("expected no report, got:\n%s", stdout)
			}
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown algorithm", []string{"sjf", "5"}, `unknown command "sjf"`},
		{"malformed burst", []string{"fcfs", "5", "x"}, `invalid burst "x" for P1`},
		{"malformed quantum", []string{"rr", "q", "5"}, `invalid time quantum "q"`},
		{"unknown output", []string{"-o", "xml", "fcfs", "5"}, `unknown output format "xml"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

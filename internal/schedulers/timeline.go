package schedulers

// runHook observes every Run a scheduler makes, before it happens. start is
// the simulated time the slice begins.
type runHook func(current, start, runTime int)

func (h runHook) call(current, start, runTime int) {
	if h != nil {
		h(current, start, runTime)
	}
}

// firstRuns holds the simulated time each process first got the CPU. A
// process with no burst never runs and keeps 0.
type firstRuns struct {
	start []int
	seen  []bool
}

func newFirstRuns(n int) *firstRuns {
	return &firstRuns{start: make([]int, n), seen: make([]bool, n)}
}

func (f *firstRuns) record(current, start, runTime int) {
	if runTime <= 0 || f.seen[current] {
		return
	}
	f.start[current] = start
	f.seen[current] = true
}

func (f *firstRuns) responseTime(processId int) int {
	return f.start[processId]
}

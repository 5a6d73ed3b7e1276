// Package reporter renders diagnostic views of a simulation: per-tick
// status dumps, final run summaries and timeline verification. All output
// is read-only with respect to the scheduling state and has no effect on
// decisions.
package reporter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/viant/simsched/scheduler"
	"github.com/viant/simsched/service/dispatch"
)

// DumpStatus writes a one-line-per-entity snapshot of the simulation state
// at the given tick: the running process, the ready queue and every
// resource with its owner and waiters.
func DumpStatus(w io.Writer, tick int, state *scheduler.State) {
	fmt.Fprintf(w, "tick %d\n", tick)
	if cur := state.Current; cur != nil {
		fmt.Fprintf(w, "  running: pid=%d age=%d/%d prio=%d\n", cur.PID, cur.Age, cur.Lifespan, cur.Priority)
	} else {
		fmt.Fprintf(w, "  running: idle\n")
	}
	var ready []string
	for _, p := range state.Ready.Snapshot() {
		ready = append(ready, fmt.Sprintf("%d(prio=%d,rem=%d)", p.PID, p.Priority, p.Remaining()))
	}
	fmt.Fprintf(w, "  ready: [%s]\n", strings.Join(ready, " "))
	for _, r := range state.Resources {
		owner := "free"
		if r.Owner != nil {
			owner = fmt.Sprintf("pid=%d", r.Owner.PID)
		}
		var waiters []string
		for _, p := range r.Waiters.Snapshot() {
			waiters = append(waiters, fmt.Sprintf("%d", p.PID))
		}
		fmt.Fprintf(w, "  resource %d: %s waiters=[%s]\n", r.RID, owner, strings.Join(waiters, " "))
	}
}

// Report writes a final summary of the run: the timeline and per-process
// completion ticks.
func Report(w io.Writer, run *dispatch.Run) {
	fmt.Fprintf(w, "run %s: workload=%s policy=%s ticks=%d\n", run.ID, run.Workload, run.Policy, run.Ticks)
	fmt.Fprintf(w, "timeline: %s\n", strings.Join(run.Timeline, " "))
	pids := make([]int, 0, len(run.Completed))
	for pid := range run.Completed {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	for _, pid := range pids {
		fmt.Fprintf(w, "pid %d completed at tick %d\n", pid, run.Completed[pid])
	}
}

// Verify compares the recorded timeline against the expectation and returns
// a unified diff, or the empty string when they match.
func Verify(run *dispatch.Run, expect []string) string {
	if len(expect) == 0 {
		return ""
	}
	actual := strings.Join(run.Timeline, "\n") + "\n"
	wanted := strings.Join(expect, "\n") + "\n"
	if actual == wanted {
		return ""
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(wanted),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   run.Policy,
		Context:  2,
	})
	return diff
}

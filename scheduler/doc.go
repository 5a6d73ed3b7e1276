// Package scheduler implements the pluggable CPU-scheduling decision
// engine: a Policy interface with one implementation per discipline
// (first-come-first-served, shortest-job-first, shortest-time-to-completion
// first, round-robin, static priority, priority with aging, priority
// ceiling and priority inheritance) operating over an explicit simulation
// State.
//
// The engine is turn-based and single-threaded by contract: the dispatch
// driver calls Schedule exactly once per simulated tick and Acquire/Release
// synchronously within the tick that issues them, so no locking is needed.
// Correctness instead rests on strict queue-mutation discipline - selection
// scans never mutate the queue they are choosing from, and every relocation
// removes a process from its previous queue before inserting it into a new
// one.
package scheduler

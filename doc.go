// Package simsched provides a pluggable CPU-scheduling simulation engine.
//
// The engine replays declaratively described workloads (for example in
// YAML) tick by tick under one of several scheduling policies and comes
// with pluggable service layers:
//
//   - scheduler – the policy decision engine (fcfs, sjf, stcf, rr, prio,
//     aging, pcp, pip)
//   - dispatch  – the tick driver: forking, aging, resource usage, retirement
//   - workload  – scenario loading and validation
//   - reporter  – status dumps, run reports and timeline verification
//
// Simsched is designed to be embedded in host applications. End-users
// typically interact with the engine via the high-level Service façade
// exposed by the root package:
//
//	srv := simsched.New()
//	rt := srv.Runtime()
//	w, _ := rt.LoadWorkload(ctx, "workload.yaml")
//	run, _ := rt.Run(ctx, w, "rr")
//	fmt.Println(run.Timeline)
//
// For more details see the individual sub-packages.
package simsched

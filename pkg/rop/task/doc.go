// Package task provides deferred wrappers around rop.Option and
// rop.Validation and the first-success combinators over them.
//
// A task is a function of a context returning a one-shot channel. Nothing
// runs until the task is called, and combinators only call a candidate once
// its predecessor resolved without a value, so at most one candidate is in
// flight and results arrive in input order.
//
// Key operations:
// - FirstPresent: first present result of a slice of Option tasks
// - FirstSuccessOrAccumulate: first success, or all failures combined by a monoid
// - Then/Map/ThenValidation/MapFailure: sequence deferred steps
// - Delay/DelayStep: wait before starting a step
// - Run/RunValidation: start a task and wait for its result
//
// A done context stops further candidates from starting and releases
// waiters; work that already started is never aborted.
package task

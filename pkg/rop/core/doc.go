// Package core contains the plumbing the deferred combinators run on:
// step options carried on the context, a cancellable Sleep and the
// one-shot channel helpers used to start and await deferred work.
package core

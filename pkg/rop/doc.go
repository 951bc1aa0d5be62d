// Package rop defines the wrapper vocabulary shared by the first-success
// combinators: Option[T] (present or absent), Validation[E, T] (success or
// an accumulable failure), Monoid[E] and the Alternative[W] capability.
//
// FirstAlt is the single reduction every combinator is built on: it folds an
// ordered slice from the wrapper's Zero with its lazy Alt, so the first
// element that carries a value wins and later elements are left alone.
//
// Concrete combinators live in:
// - solo: synchronous Option and Validation
// - task: deferred Option and Validation driven over channels
// - tiny: a fluent Option chain with lazy alternatives
package rop

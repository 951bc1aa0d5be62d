// Package solo contains the synchronous first-success combinators and the
// single-value helpers around rop.Option and rop.Validation.
//
// Highlights:
// - FirstPresent: first present option of a slice, or None
// - FirstSuccessOrAccumulate: first success, or every failure combined by a monoid
// - FirstPresentOf: lazily call candidates until one returns a value
// - OptionAlternative/ValidationAlternative: Alternative instances used by rop.FirstAlt
// - Map/Switch/MapFailure/Tee/Finally/ValueOr: value helpers
package solo

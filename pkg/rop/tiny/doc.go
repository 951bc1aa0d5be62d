// Package tiny provides a minimal fluent Chain[T] over rop.Option values.
//
// - Start/FromValue/Empty: create a Chain
// - Then/Map: compose steps that run only while a value is present
// - OrElse/Or: lazily fall back to alternatives, first present wins
// - Ensure: trigger side effects
// - Finally: reduce to a concrete value via handlers
package tiny

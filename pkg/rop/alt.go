package rop

// FirstAlt folds xs left to right starting from a.Zero(), choosing between
// the accumulator and each element with a.Alt. The element is handed over as
// a thunk so the wrapper decides whether it is ever looked at.
func FirstAlt[W any](a Alternative[W], xs []W) W {
	acc := a.Zero()
	for _, x := range xs {
		acc = a.Alt(acc, func() W { return x })
	}
	return acc
}

// Package batch runs a transform over an ordered sequence of inputs and
// captures success-or-failure per item without short-circuiting.
//
// Every input keeps its slot: the result is always index-aligned with the
// input sequence, so callers can decide "proceed only if enough items
// succeeded" without re-running anything.
//
//	res := batch.Map(dates, parseDate)
//	if res.SuccessRatio() >= 0.9 {
//	    store(res.Successes())
//	}
package batch

package quota

import "errors"

// ErrQuotaExhausted is returned when a user has no free generations remaining
// for the current month.
var ErrQuotaExhausted = errors.New("generation quota exhausted")

// DefaultGenerations is the number of free AI itinerary generations granted
// per month.
const DefaultGenerations = 5

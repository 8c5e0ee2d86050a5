package expiration

import "time"

// None disables expiration entirely: nothing ever reports as expired.
type None[K comparable] struct{}

// NewNone constructs a no-op expiration policy.
func NewNone[K comparable]() None[K] { return None[K]{} }

func (None[K]) OnAccess(K, time.Time)         {}
func (None[K]) OnWrite(K, time.Time)          {}
func (None[K]) IsExpired(K, time.Time) bool   { return false }
func (None[K]) Sweep(time.Time) []K           { return nil }
func (None[K]) OnRemove(K)                    {}
func (None[K]) Reset()                        {}

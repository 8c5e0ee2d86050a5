// Package cache provides the single-shard cache engine that backs the
// sharded, layered, and persistent front-ends in this module. It is the
// one place eviction, expiration, metrics, and events are wired together
// behind a single mutex; every other package composes Cache rather than
// re-implementing its critical section.
package cache

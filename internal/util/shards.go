package util

// ShardIndex maps a 64-bit hash to a shard index. Uses the fast masked path
// when shards is a power of two, and falls back to modulo otherwise — a
// sharded cache is only required to have a positive shard count, not a
// power of two.
func ShardIndex(hash uint64, shards int) int {
	if shards <= 1 {
		return 0
	}
	if IsPowerOfTwo(uint64(shards)) {
		return int(hash & uint64(shards-1))
	}
	return int(hash % uint64(shards))
}

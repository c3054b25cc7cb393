package xcache

import "sync/atomic"

// Stats 是缓存的累计统计信息。
type Stats struct {
	// Hits 读取命中次数（Get 与 Pop）。
	Hits uint64
	// Misses 读取未命中次数，包括读到已过期条目。
	Misses uint64
	// Adds 成功写入次数。
	Adds uint64
	// Evictions 因容量上限被淘汰的条目数。
	Evictions uint64
	// Expirations 因过期被删除的条目数（读取时删除与清理删除之和）。
	Expirations uint64
}

// HitRatio 返回命中率 (0.0 - 1.0)，没有读取时返回 0。
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type counters struct {
	hits        atomic.Uint64
	misses      atomic.Uint64
	adds        atomic.Uint64
	evictions   atomic.Uint64
	expirations atomic.Uint64
}

// Stats 返回统计信息快照。
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:        c.stats.hits.Load(),
		Misses:      c.stats.misses.Load(),
		Adds:        c.stats.adds.Load(),
		Evictions:   c.stats.evictions.Load(),
		Expirations: c.stats.expirations.Load(),
	}
}

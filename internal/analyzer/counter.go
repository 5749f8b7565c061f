package analyzer

import "sort"

// keyCount pairs a counted key with its multiplicity.
type keyCount struct {
	Key   string
	Count int
}

// counter is a multiset that remembers first-seen insertion order.
// Rankings derived from it are stable across runs: ties break by first
// appearance in the corpus, never by map iteration order.
type counter struct {
	counts map[string]int
	order  []string
	total  int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) Add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
	c.total++
}

// Count returns the multiplicity of key (0 when absent).
func (c *counter) Count(key string) int {
	return c.counts[key]
}

// Keys returns all distinct keys in first-seen order.
func (c *counter) Keys() []string {
	return c.order
}

// Excess returns how many additions were repeats of an already-seen key.
func (c *counter) Excess() int {
	return c.total - len(c.order)
}

// CollidingInstances returns the total multiplicity of keys seen more
// than once, counting every member of each colliding group.
func (c *counter) CollidingInstances() int {
	instances := 0
	for _, key := range c.order {
		if n := c.counts[key]; n > 1 {
			instances += n
		}
	}
	return instances
}

// MostCommon returns up to n entries ordered by descending count, ties by
// first-seen order. n <= 0 returns all entries.
func (c *counter) MostCommon(n int) []keyCount {
	entries := make([]keyCount, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, keyCount{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

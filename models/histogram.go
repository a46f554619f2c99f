package models

// Histogram counts occurrences per key and remembers the order in which keys
// were first seen. Most and Least break ties in favour of the earliest key.
type Histogram[K comparable] struct {
	keys   []K
	counts map[K]int
}

// NewHistogram returns an empty Histogram.
func NewHistogram[K comparable]() *Histogram[K] {
	return &Histogram[K]{counts: make(map[K]int)}
}

// Seed registers k with a zero count if it is not present yet.
func (h *Histogram[K]) Seed(k K) {
	if _, ok := h.counts[k]; ok {
		return
	}
	h.keys = append(h.keys, k)
	h.counts[k] = 0
}

// Add increments the count of k.
func (h *Histogram[K]) Add(k K) {
	h.Seed(k)
	h.counts[k]++
}

// Count returns the count of k, zero when k was never seen.
func (h *Histogram[K]) Count(k K) int { return h.counts[k] }

// Len returns the number of distinct keys.
func (h *Histogram[K]) Len() int { return len(h.keys) }

// Keys returns the keys in first-seen order.
func (h *Histogram[K]) Keys() []K {
	out := make([]K, len(h.keys))
	copy(out, h.keys)
	return out
}

// Most returns the key with the highest count.
func (h *Histogram[K]) Most() (K, int) {
	return h.pick(func(candidate, best int) bool { return candidate > best })
}

// Least returns the key with the lowest count.
func (h *Histogram[K]) Least() (K, int) {
	return h.pick(func(candidate, best int) bool { return candidate < best })
}

func (h *Histogram[K]) pick(better func(candidate, best int) bool) (K, int) {
	var best K
	if len(h.keys) == 0 {
		return best, 0
	}
	best = h.keys[0]
	bestCount := h.counts[best]
	for _, k := range h.keys[1:] {
		if c := h.counts[k]; better(c, bestCount) {
			best, bestCount = k, c
		}
	}
	return best, bestCount
}

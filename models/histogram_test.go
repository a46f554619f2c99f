package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogramKeepsFirstSeenOrder(t *testing.T) {
	h := NewHistogram[string]()
	for _, k := range []string{"Dublin", "Cork", "Dublin", "Galway", "Cork", "Dublin"} {
		h.Add(k)
	}

	assert.Equal(t, []string{"Dublin", "Cork", "Galway"}, h.Keys())
	assert.Equal(t, 3, h.Count("Dublin"))
	assert.Equal(t, 2, h.Count("Cork"))
	assert.Equal(t, 1, h.Count("Galway"))
	assert.Equal(t, 0, h.Count("Kerry"))
	assert.Equal(t, 3, h.Len())
}

func TestHistogramSeedDoesNotCount(t *testing.T) {
	h := NewHistogram[int]()
	h.Seed(2019)
	h.Seed(2020)
	h.Add(2020)
	h.Seed(2020)

	assert.Equal(t, []int{2019, 2020}, h.Keys())
	assert.Equal(t, 0, h.Count(2019))
	assert.Equal(t, 1, h.Count(2020))
}

func TestHistogramTiesGoToEarliestKey(t *testing.T) {
	h := NewHistogram[string]()
	for _, k := range []string{"b", "a", "a", "b", "c"} {
		h.Add(k)
	}

	most, n := h.Most()
	assert.Equal(t, "b", most)
	assert.Equal(t, 2, n)

	least, n := h.Least()
	assert.Equal(t, "c", least)
	assert.Equal(t, 1, n)
}

func TestHistogramEmpty(t *testing.T) {
	h := NewHistogram[int]()
	k, n := h.Most()
	assert.Zero(t, k)
	assert.Zero(t, n)
	assert.Empty(t, h.Keys())
}

func TestHistogramKeysIsACopy(t *testing.T) {
	h := NewHistogram[string]()
	h.Add("x")
	keys := h.Keys()
	keys[0] = "y"
	assert.Equal(t, []string{"x"}, h.Keys())
}

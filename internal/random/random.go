// Package random wraps a seedable PRNG with the helpers the dataset
// generator draws from. A Source is not safe for concurrent use.
package random

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Source is the randomness provider passed through the generator.
type Source struct {
	rng  *rand.Rand
	seed uint64
}

// New returns a Source seeded with seed. The same seed yields the same
// sequence of draws.
func New(seed uint64) *Source {
	return &Source{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// NewFromTime seeds a Source from the wall clock.
func NewFromTime() *Source {
	return New(uint64(time.Now().UnixNano()))
}

func (s *Source) Seed() uint64 {
	return s.seed
}

// IntN returns a value in [0, n).
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// Between returns a value in [lo, hi], both ends included.
func (s *Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Int64Between returns a value in [lo, hi] for ranges wider than int on
// 32-bit platforms.
func (s *Source) Int64Between(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Int64N(hi-lo+1)
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Uniform returns a value in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.Float64() < p
}

// Date returns a calendar date in [start, end], truncated to midnight UTC.
func (s *Source) Date(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	d := start.AddDate(0, 0, s.Between(0, days))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// String returns n random ASCII letters.
func (s *Source) String(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[s.rng.IntN(len(letters))]
	}
	return string(b)
}

// Phone returns a UAE-style mobile number, e.g. 0552-318-4410.
func (s *Source) Phone() string {
	return fmt.Sprintf("05%d-%d-%d", s.Between(10, 99), s.Between(100, 999), s.Between(1000, 9999))
}

// IBAN returns an AE-prefixed 18 digit account number.
func (s *Source) IBAN() string {
	return fmt.Sprintf("AE%d", s.Int64Between(100000000000000000, 999999999999999999))
}

// Perm returns a random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	return s.rng.Perm(n)
}

// Choice picks one element of items. items must not be empty.
func Choice[T any](s *Source, items []T) T {
	return items[s.IntN(len(items))]
}

// Sample picks n distinct elements of items, in random order.
func Sample[T any](s *Source, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	perm := s.Perm(len(items))
	out := make([]T, 0, n)
	for _, i := range perm[:n] {
		out = append(out, items[i])
	}
	return out
}

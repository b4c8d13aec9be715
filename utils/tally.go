// Copyright 2025, the ISU Genomics contributors.

package utils

import "sort"

// LengthTally counts the number of reads observed at each sequence
// length.
type LengthTally struct {
	counts map[int]int
	total  int
}

func NewLengthTally() *LengthTally {
	return &LengthTally{
		counts: make(map[int]int),
	}
}

// Add records one read with length n.
func (lt *LengthTally) Add(n int) {
	lt.counts[n]++
	lt.total++
}

// Count returns the number of reads observed with length n.
func (lt *LengthTally) Count(n int) int {
	return lt.counts[n]
}

// Total returns the number of reads recorded in the tally.
func (lt *LengthTally) Total() int {
	return lt.total
}

// Lengths returns the distinct observed read lengths, sorted in
// increasing order.
func (lt *LengthTally) Lengths() []int {

	lens := make([]int, 0, len(lt.counts))
	for n := range lt.counts {
		lens = append(lens, n)
	}
	sort.Ints(lens)

	return lens
}

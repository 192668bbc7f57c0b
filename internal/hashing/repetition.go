package hashing

import "github.com/lgbarn/minimax-chess-go/internal/engine"

// RepetitionTracker counts how often each position of a game has occurred.
// Positions are pushed as moves are played and popped when moves are taken
// back. It is not safe for concurrent use.
type RepetitionTracker struct {
	counts  map[uint64]int
	history []uint64
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{counts: make(map[uint64]int)}
}

// Push records b and returns how many times its position has now occurred.
func (r *RepetitionTracker) Push(b *engine.Board) int {
	key := GenerateZobristHash(b)
	r.history = append(r.history, key)
	r.counts[key]++
	return r.counts[key]
}

// Pop forgets the most recently pushed position.
func (r *RepetitionTracker) Pop() {
	if len(r.history) == 0 {
		return
	}
	key := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	if r.counts[key]--; r.counts[key] == 0 {
		delete(r.counts, key)
	}
}

// Count returns how many times the position of b has been pushed.
func (r *RepetitionTracker) Count(b *engine.Board) int {
	return r.counts[GenerateZobristHash(b)]
}

// Occurrences returns how many times the latest position has occurred.
func (r *RepetitionTracker) Occurrences() int {
	if len(r.history) == 0 {
		return 0
	}
	return r.counts[r.history[len(r.history)-1]]
}

// IsThreefold reports whether the latest position has occurred three times.
func (r *RepetitionTracker) IsThreefold() bool {
	return r.Occurrences() >= 3
}

// Len returns the number of positions pushed.
func (r *RepetitionTracker) Len() int {
	return len(r.history)
}

// Reset removes every recorded position.
func (r *RepetitionTracker) Reset() {
	r.counts = make(map[uint64]int)
	r.history = r.history[:0]
}

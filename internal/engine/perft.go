package engine

import "sort"

// Perft counts the leaf positions reachable from b in exactly depth plies,
// following only moves that complete.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	player := b.CurrentPlayer()
	for _, m := range player.LegalMoves() {
		t := player.MakeMove(m)
		if !t.IsDone() {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(t.To, depth-1)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// Divide runs Perft below each completing root move and returns the counts
// sorted by long algebraic move text.
func Divide(b *Board, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	player := b.CurrentPlayer()
	var entries []DivideEntry
	for _, m := range player.LegalMoves() {
		t := player.MakeMove(m)
		if !t.IsDone() {
			continue
		}
		entries = append(entries, DivideEntry{Move: m.LongAlgebraic(), Nodes: Perft(t.To, depth-1)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Move < entries[j].Move })
	return entries
}

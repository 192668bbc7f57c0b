package output

import (
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/ai"
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/game"
)

// JSONState represents a game position in JSON format.
type JSONState struct {
	FEN        string     `json:"fen"`
	InitialFEN string     `json:"initialFEN,omitempty"`
	ToMove     string     `json:"toMove"` // "white" or "black"
	Status     string     `json:"status"`
	Result     string     `json:"result"`
	InCheck    bool       `json:"inCheck"`
	Winner     string     `json:"winner,omitempty"`
	LegalMoves []string   `json:"legalMoves"`
	Moves      []JSONMove `json:"moves"`
	Captured   JSONTaken  `json:"captured"`
	PlyCount   int        `json:"plyCount"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
}

// JSONTaken lists captured pieces by the side they belonged to.
type JSONTaken struct {
	White []string `json:"white"`
	Black []string `json:"black"`
}

// JSONAnalysis represents a search result in JSON format.
type JSONAnalysis struct {
	Move      string `json:"move,omitempty"` // long algebraic
	SAN       string `json:"san,omitempty"`
	Score     int    `json:"score"`
	Eval      string `json:"eval"`
	Depth     int    `json:"depth"`
	Evaluated int64  `json:"evaluated"`
	ElapsedMS int64  `json:"elapsedMs"`
}

// JSONPerft represents a perft count in JSON format.
type JSONPerft struct {
	Depth int               `json:"depth"`
	Nodes uint64            `json:"nodes"`
	Moves map[string]uint64 `json:"moves,omitempty"`
}

// StateToJSON converts a session to its JSON form. Legal moves are the
// completable moves of the side to move in long algebraic notation.
func StateToJSON(s *game.Session) *JSONState {
	b := s.Board()
	status := s.Status()
	js := &JSONState{
		FEN:        s.FEN(),
		ToMove:     colorName(s.ToMove()),
		Status:     status.String(),
		Result:     s.Result(),
		InCheck:    b.CurrentPlayer().IsInCheck(),
		LegalMoves: legalMoves(b),
		Moves:      convertHistory(s.History()),
		Captured: JSONTaken{
			White: pieceNames(s.Captured(chess.White)),
			Black: pieceNames(s.Captured(chess.Black)),
		},
		PlyCount: s.Ply(),
	}
	if s.InitialFEN() != engine.InitialFEN {
		js.InitialFEN = s.InitialFEN()
	}
	if winner, ok := s.Winner(); ok {
		js.Winner = colorName(winner)
	}
	return js
}

// AnalysisToJSON converts a search result to its JSON form.
func AnalysisToJSON(r ai.Result) *JSONAnalysis {
	ja := &JSONAnalysis{
		Score:     r.Score,
		Depth:     r.Depth,
		Evaluated: r.Evaluated,
		ElapsedMS: r.Elapsed.Milliseconds(),
	}
	if r.Move.IsNull() {
		ja.Score = 0
		ja.Eval = "-"
		return ja
	}
	ja.Move = r.Move.LongAlgebraic()
	ja.SAN = r.Move.String()
	ja.Eval = ai.FormatScore(r.Score)
	return ja
}

// PerftToJSON converts a perft breakdown to its JSON form.
func PerftToJSON(depth int, total uint64, entries []engine.DivideEntry) *JSONPerft {
	jp := &JSONPerft{Depth: depth, Nodes: total}
	if len(entries) > 0 {
		jp.Moves = make(map[string]uint64, len(entries))
		for _, e := range entries {
			jp.Moves[e.Move] = e.Nodes
		}
	}
	return jp
}

func legalMoves(b *engine.Board) []string {
	done := b.CurrentPlayer().DoneMoves()
	moves := make([]string, len(done))
	for i, t := range done {
		moves[i] = t.Move.LongAlgebraic()
	}
	return moves
}

func convertHistory(history []game.Record) []JSONMove {
	moves := make([]JSONMove, len(history))
	for i, r := range history {
		moves[i] = convertRecord(r)
	}
	return moves
}

func convertRecord(r game.Record) JSONMove {
	m := r.Move
	jm := JSONMove{
		MoveNumber: r.Fullmove,
		Color:      colorName(r.Alliance()),
		SAN:        r.SAN,
		UCI:        m.LongAlgebraic(),
		From:       m.CurrentCoordinate().String(),
		To:         m.DestinationCoordinate().String(),
		Piece:      m.MovedPiece().Kind.String(),
	}
	if captured, ok := m.AttackedPiece(); ok {
		jm.Captured = captured.Kind.String()
	}
	if m.Kind() == engine.Promotion {
		jm.Promotion = chess.Queen.String()
	}
	return jm
}

func pieceNames(pieces []engine.Piece) []string {
	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = p.Kind.String()
	}
	return names
}

func colorName(a chess.Alliance) string {
	return strings.ToLower(a.String())
}

package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castleRights holds the parsed castling availability field.
type castleRights struct {
	whiteKing, whiteQueen, blackKing, blackQueen bool
}

func (r castleRights) kingSide(a chess.Alliance) bool {
	return chess.Choose(a, r.whiteKing, r.blackKing)
}

func (r castleRights) queenSide(a chess.Alliance) bool {
	return chess.Choose(a, r.whiteQueen, r.blackQueen)
}

// homeSquares lists the starting squares of each non-pawn kind, per alliance.
var homeSquares = map[chess.PieceKind][2][]chess.Coordinate{
	chess.Knight: {{57, 62}, {1, 6}},
	chess.Bishop: {{58, 61}, {2, 5}},
	chess.Queen:  {{59}, {3}},
}

// NewBoardFromFEN creates a board from a FEN string. The halfmove clock and
// fullmove number are accepted but not kept. First-move flags are derived
// from the placement and castling rights: pawns on their starting rank,
// kings and rooks backed by a castling right, and other pieces on their home
// squares count as unmoved.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	placement, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}

	builder := NewBuilder().SetMoveMaker(toMove)
	for c, piece := range placement {
		builder.SetPiece(derivePiece(piece.Kind, piece.Alliance, c, rights))
	}

	if ep, ok, err := parseEnPassant(parts, toMove); err != nil {
		return nil, err
	} else if ok {
		if pawn, found := placement[ep]; found && pawn.Kind == chess.Pawn && pawn.Alliance != toMove {
			builder.SetEnPassantPawn(derivePiece(chess.Pawn, pawn.Alliance, ep, rights))
		}
	}

	board, err := builder.Build()
	if err != nil {
		var posErr *errors.PositionError
		if errors.As(err, &posErr) {
			posErr.FEN = fen
		}
		return nil, err
	}
	if board.CurrentPlayer().Opponent().IsInCheck() {
		return nil, &errors.PositionError{
			Err:    errors.ErrInvalidPosition,
			FEN:    fen,
			Detail: fmt.Sprintf("%s is in check but not to move", toMove.Opposite()),
		}
	}
	return board, nil
}

// placed is a piece read from the placement field before flags are derived.
type placed struct {
	Kind     chess.PieceKind
	Alliance chess.Alliance
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) (map[chess.Coordinate]placed, error) {
	ranks := strings.Split(positions, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	placement := make(map[chess.Coordinate]placed, 32)
	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c > unicode.MaxASCII:
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				kind, ok := chess.KindFromLetter(byte(c))
				if !ok {
					return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.NumTilesPerRow {
					return nil, fmt.Errorf("rank %d overflows: %w", 8-row, errors.ErrInvalidFEN)
				}
				alliance := chess.White
				if unicode.IsLower(c) {
					alliance = chess.Black
				}
				placement[chess.Coordinate(row*chess.NumTilesPerRow+col)] = placed{Kind: kind, Alliance: alliance}
				col++
			}
		}
		if col != chess.NumTilesPerRow {
			return nil, fmt.Errorf("rank %d has %d squares: %w", 8-row, col, errors.ErrInvalidFEN)
		}
	}
	return placement, nil
}

// parseSideToMove parses the side to move field. It defaults to White.
func parseSideToMove(parts []string) (chess.Alliance, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (castleRights, error) {
	var rights castleRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.whiteKing = true
		case 'Q':
			rights.whiteQueen = true
		case 'k':
			rights.blackKing = true
		case 'q':
			rights.blackQueen = true
		default:
			return rights, fmt.Errorf("invalid castling availability: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field and returns the
// square of the pawn that may be captured.
func parseEnPassant(parts []string, toMove chess.Alliance) (chess.Coordinate, bool, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return 0, false, nil
	}
	target, err := chess.CoordinateOf(parts[3])
	if err != nil {
		return 0, false, fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	pawn := int(target) + toMove.Opposite().Direction()*chess.NumTilesPerRow
	if !chess.IsValidCoordinate(pawn) {
		return 0, false, fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	return chess.Coordinate(pawn), true, nil
}

// derivePiece restores the first-move and castle flags FEN does not carry.
func derivePiece(kind chess.PieceKind, a chess.Alliance, c chess.Coordinate, rights castleRights) Piece {
	p := Piece{Kind: kind, Alliance: a, Position: c}
	switch kind {
	case chess.Pawn:
		p.FirstMove = chess.Choose(a, chess.SecondRow[c], chess.SeventhRow[c])
	case chess.King:
		layouts := castleLayouts[a]
		if c == layouts[0].king {
			p.KingSideCapable = rights.kingSide(a)
			p.QueenSideCapable = rights.queenSide(a)
			p.FirstMove = p.KingSideCapable || p.QueenSideCapable
		}
	case chess.Rook:
		layouts := castleLayouts[a]
		p.FirstMove = (c == layouts[0].rook && rights.kingSide(a)) ||
			(c == layouts[1].rook && rights.queenSide(a))
	default:
		for _, home := range homeSquares[kind][a] {
			if home == c {
				p.FirstMove = true
			}
		}
	}
	return p
}

// BoardToFEN converts a board to a FEN string with a zero halfmove clock and
// fullmove number 1.
func BoardToFEN(b *Board) string {
	return FormatFEN(b, 0, 1)
}

// FormatFEN converts a board to a FEN string using the given clocks.
func FormatFEN(b *Board, halfmove, fullmove int) string {
	var sb strings.Builder

	writePiecePositions(&sb, b)
	sb.WriteByte(' ')
	sb.WriteByte(chess.Choose(b.CurrentPlayer().Alliance(), byte('w'), byte('b')))
	sb.WriteByte(' ')
	writeCastlingRights(&sb, b)
	sb.WriteByte(' ')
	writeEnPassant(&sb, b)
	fmt.Fprintf(&sb, " %d %d", halfmove, fullmove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, b *Board) {
	emptyCount := 0
	for c := chess.Coordinate(0); c < chess.NumTiles; c++ {
		if p, ok := b.Tile(c).Piece(); ok {
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		} else {
			emptyCount++
		}
		if chess.EighthColumn[c] {
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			if c != chess.NumTiles-1 {
				sb.WriteByte('/')
			}
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, b *Board) {
	start := sb.Len()
	for _, a := range [...]chess.Alliance{chess.White, chess.Black} {
		player := b.Player(a)
		if !player.King().FirstMove {
			continue
		}
		if player.IsKingSideCastleCapable() {
			sb.WriteByte(chess.Choose(a, byte('K'), byte('k')))
		}
		if player.IsQueenSideCastleCapable() {
			sb.WriteByte(chess.Choose(a, byte('Q'), byte('q')))
		}
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, b *Board) {
	ep, ok := b.EnPassantPawn()
	if !ok {
		sb.WriteByte('-')
		return
	}
	target := chess.Coordinate(int(ep.Position) - ep.Alliance.Direction()*chess.NumTilesPerRow)
	sb.WriteString(target.String())
}

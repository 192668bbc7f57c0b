package chess

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Coordinate is a square index in [0,64), row-major with rank 8 at index 0.
type Coordinate int

// Board dimensions.
const (
	NumTiles       = 64
	NumTilesPerRow = 8
)

// Column and row membership tables, indexed by coordinate.
var (
	FirstColumn   = initColumn(0)
	SecondColumn  = initColumn(1)
	SeventhColumn = initColumn(6)
	EighthColumn  = initColumn(7)

	EighthRow  = initRow(0)
	SeventhRow = initRow(8)
	SecondRow  = initRow(48)
	FirstRow   = initRow(56)
)

var (
	algebraicNotation    = initAlgebraicNotation()
	positionToCoordinate = initPositionToCoordinate()
)

func initColumn(column int) [NumTiles]bool {
	var table [NumTiles]bool
	for c := column; c < NumTiles; c += NumTilesPerRow {
		table[c] = true
	}
	return table
}

func initRow(start int) [NumTiles]bool {
	var table [NumTiles]bool
	for c := start; c < start+NumTilesPerRow; c++ {
		table[c] = true
	}
	return table
}

func initAlgebraicNotation() [NumTiles]string {
	var names [NumTiles]string
	for c := 0; c < NumTiles; c++ {
		file := byte('a' + c%NumTilesPerRow)
		rank := byte('8' - c/NumTilesPerRow)
		names[c] = string([]byte{file, rank})
	}
	return names
}

func initPositionToCoordinate() map[string]Coordinate {
	m := make(map[string]Coordinate, NumTiles)
	for c, name := range algebraicNotation {
		m[name] = Coordinate(c)
	}
	return m
}

// IsValidCoordinate reports whether c lies on the board.
func IsValidCoordinate(c int) bool {
	return c >= 0 && c < NumTiles
}

// IsValid reports whether the coordinate lies on the board.
func (c Coordinate) IsValid() bool {
	return IsValidCoordinate(int(c))
}

// Column returns the 0-based file index (0 = a).
func (c Coordinate) Column() int {
	return int(c) % NumTilesPerRow
}

// Row returns the 0-based row index counted from rank 8.
func (c Coordinate) Row() int {
	return int(c) / NumTilesPerRow
}

// String returns the algebraic name of the square, or "-" when off the board.
func (c Coordinate) String() string {
	if !c.IsValid() {
		return "-"
	}
	return algebraicNotation[c]
}

// AlgebraicNotation returns the algebraic name of a coordinate ("a8" for 0).
func AlgebraicNotation(c Coordinate) string {
	return c.String()
}

// CoordinateOf converts an algebraic square name to its coordinate.
func CoordinateOf(name string) (Coordinate, error) {
	if c, ok := positionToCoordinate[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
}

// MustCoordinateOf is like CoordinateOf but panics on an unknown name.
// It is intended for tables and tests.
func MustCoordinateOf(name string) Coordinate {
	c, err := CoordinateOf(name)
	if err != nil {
		panic(err)
	}
	return c
}

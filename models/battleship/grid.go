package battleship

import (
	"encoding/json"
	"strings"

	cerr "github.com/saeidalz13/battleship-validator/internal/error"
)

type CellState uint8

const (
	CellSea CellState = iota
	CellShip

	// Working state only. Callers never supply it.
	CellVisited
)

// Choose the max uint8 to make the unknown code unique.
// Any symbol that is not sea or ship is parsed into it.
const CellUnknown CellState = 255

const (
	SymbolSea  = '.'
	SymbolShip = '*'
)

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

type Grid [][]CellState

// Creates a new grid of the given size where every cell is sea.
func NewGrid(rows, cols int) Grid {
	grid := make(Grid, rows)

	for i := 0; i < rows; i++ {
		grid[i] = make([]CellState, cols)
	}
	return grid
}

// Converts the rows of a symbol board ('*' ship, '.' sea) to a grid.
// Unrecognized runes become CellUnknown so the validator rejects the
// board instead of the parser failing.
func ParseSymbolRows(rows []string) (Grid, error) {
	grid := make(Grid, len(rows))

	for r, line := range rows {
		symbols := []rune(line)
		grid[r] = make([]CellState, len(symbols))

		for c, symbol := range symbols {
			switch symbol {
			case SymbolShip:
				grid[r][c] = CellShip
			case SymbolSea:
				grid[r][c] = CellSea
			default:
				grid[r][c] = CellUnknown
			}
		}
	}

	if _, _, err := grid.Dimensions(); err != nil {
		return nil, err
	}
	return grid, nil
}

// Returns rows and cols of the grid. Fails if the grid
// is empty or jagged.
func (g Grid) Dimensions() (int, int, error) {
	if len(g) == 0 {
		return 0, 0, cerr.ErrGridEmpty()
	}

	cols := len(g[0])
	for r, row := range g {
		if len(row) == 0 {
			return 0, 0, cerr.ErrGridRowEmpty(r)
		}
		if len(row) != cols {
			return 0, 0, cerr.ErrGridNotRectangular(r, len(row), cols)
		}
	}
	return len(g), cols, nil
}

func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g) && col >= 0 && col < len(g[row])
}

func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for r, row := range g {
		clone[r] = append([]CellState(nil), row...)
	}
	return clone
}

// Encodes as nested number arrays. Without it rows would be
// encoded as base64 strings since CellState is a uint8.
func (g Grid) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("null"), nil
	}

	rows := make([][]int, len(g))
	for r, row := range g {
		rows[r] = make([]int, len(row))
		for c, cell := range row {
			rows[r][c] = int(cell)
		}
	}
	return json.Marshal(rows)
}

func (g Grid) String() string {
	var sb strings.Builder

	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			switch cell {
			case CellShip, CellVisited:
				sb.WriteRune(SymbolShip)
			case CellSea:
				sb.WriteRune(SymbolSea)
			default:
				sb.WriteRune('?')
			}
		}
	}
	return sb.String()
}

package battleship

import (
	cerr "github.com/saeidalz13/battleship-validator/internal/error"
)

const (
	ReasonUnknownCell      = "cell state is neither sea nor ship"
	ReasonBentShip         = "ship is not a straight line"
	ReasonTouchingShips    = "ships touch each other"
	ReasonUnexpectedLength = "ship length is not part of the fleet"
	ReasonTooManyShips     = "more ships of this length than the fleet requires"
	ReasonFleetMismatch    = "ships on the board do not match the fleet"
)

type Orientation uint8

const (
	OrientationSingle Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

const (
	orientationSingle     = "single"
	orientationHorizontal = "horizontal"
	orientationVertical   = "vertical"
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return orientationHorizontal
	case OrientationVertical:
		return orientationVertical
	default:
		return orientationSingle
	}
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	switch string(text) {
	case orientationSingle:
		*o = OrientationSingle
	case orientationHorizontal:
		*o = OrientationHorizontal
	case orientationVertical:
		*o = OrientationVertical
	default:
		return cerr.ErrUnknownOrientation(string(text))
	}
	return nil
}

type Segment struct {
	Start       Coordinates `json:"start"`
	Length      int         `json:"length"`
	Orientation Orientation `json:"orientation"`
}

// Cells returns the coordinates the segment occupies, starting at Start.
func (s Segment) Cells() []Coordinates {
	dRow, dCol := s.Orientation.step()
	cells := make([]Coordinates, 0, s.Length)
	for i := 0; i < s.Length; i++ {
		cells = append(cells, NewCoordinates(s.Start.Row+i*dRow, s.Start.Col+i*dCol))
	}
	return cells
}

func (o Orientation) step() (int, int) {
	switch o {
	case OrientationHorizontal:
		return 0, 1
	case OrientationVertical:
		return 1, 0
	default:
		return 0, 0
	}
}

// Result is the verdict of one validation. Fleet and Segments are
// filled in only for valid boards. Reason describes the first rule
// that was broken and Cell is where it was found.
type Result struct {
	Valid    bool
	Fleet    Fleet
	Segments []Segment
	Reason   string
	Cell     *Coordinates
}

func invalid(reason string, at Coordinates) Result {
	return Result{Valid: false, Reason: reason, Cell: &at}
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Validator checks one board against one fleet. The grid is never
// written to; visited ship cells are tracked by coordinates.
type Validator struct {
	grid  Grid
	rows  int
	cols  int
	fleet Fleet

	visited  map[Coordinates]struct{}
	tally    Fleet
	segments []Segment
}

// A nil fleet means DefaultFleet. A non-nil empty fleet requires
// a board without ships.
func NewValidator(grid Grid, fleet Fleet) (*Validator, error) {
	rows, cols, err := grid.Dimensions()
	if err != nil {
		return nil, err
	}

	if fleet == nil {
		fleet = DefaultFleet()
	}
	if err := fleet.Validate(); err != nil {
		return nil, err
	}

	return &Validator{
		grid:  grid,
		rows:  rows,
		cols:  cols,
		fleet: fleet.Normalize(),
	}, nil
}

// Validate is the one-shot form of NewValidator followed by Validate.
// The returned error is only set for malformed input; a board that
// breaks a game rule gives an invalid Result and a nil error.
func Validate(grid Grid, fleet Fleet) (Result, error) {
	v, err := NewValidator(grid, fleet)
	if err != nil {
		return Result{}, err
	}
	return v.Validate(), nil
}

// Scans the grid in row-major order and stops at the first broken
// rule. Calling it again starts from scratch and gives the same result.
// Buffers are sized from the grid only; fleet counts come from callers.
func (v *Validator) Validate() Result {
	v.visited = make(map[Coordinates]struct{}, v.rows*v.cols)
	v.tally = make(Fleet, len(v.fleet))
	v.segments = nil

	for r := 0; r < v.rows; r++ {
		for c := 0; c < v.cols; c++ {
			at := NewCoordinates(r, c)
			if v.isVisited(at) {
				continue
			}

			switch v.grid[r][c] {
			case CellSea:
				continue

			case CellShip:
				segment, res := v.traceSegment(at)
				if res != nil {
					return *res
				}
				if res := v.checkIsolation(segment); res != nil {
					return *res
				}
				if res := v.tallySegment(segment); res != nil {
					return *res
				}

			default:
				return invalid(ReasonUnknownCell, at)
			}
		}
	}

	if !v.tally.Equal(v.fleet) {
		return Result{Valid: false, Reason: ReasonFleetMismatch}
	}

	return Result{Valid: true, Fleet: v.tally.Clone(), Segments: v.segments}
}

func (v *Validator) isVisited(at Coordinates) bool {
	_, ok := v.visited[at]
	return ok
}

func (v *Validator) isShip(row, col int) bool {
	return v.grid.InBounds(row, col) && v.grid[row][col] == CellShip
}

// Walks the straight run that starts at `start`. Only the right and
// bottom neighbors can continue a run because every cell before
// `start` in row-major order has already been scanned.
func (v *Validator) traceSegment(start Coordinates) (Segment, *Result) {
	right := v.isShip(start.Row, start.Col+1)
	bottom := v.isShip(start.Row+1, start.Col)

	segment := Segment{Start: start, Length: 1, Orientation: OrientationSingle}
	v.visited[start] = struct{}{}

	switch {
	case right && bottom:
		res := invalid(ReasonBentShip, start)
		return segment, &res
	case right:
		segment.Orientation = OrientationHorizontal
	case bottom:
		segment.Orientation = OrientationVertical
	default:
		return segment, nil
	}

	dRow, dCol := segment.Orientation.step()
	// perpendicular axis
	pRow, pCol := dCol, dRow

	cur := start
	for {
		if v.isShip(cur.Row+pRow, cur.Col+pCol) || v.isShip(cur.Row-pRow, cur.Col-pCol) {
			res := invalid(ReasonBentShip, cur)
			return segment, &res
		}

		// the two diagonals ahead in the walking direction
		aheadRow, aheadCol := cur.Row+dRow, cur.Col+dCol
		if v.isShip(aheadRow+pRow, aheadCol+pCol) || v.isShip(aheadRow-pRow, aheadCol-pCol) {
			res := invalid(ReasonBentShip, cur)
			return segment, &res
		}

		if !v.isShip(aheadRow, aheadCol) {
			return segment, nil
		}

		cur = NewCoordinates(aheadRow, aheadCol)
		v.visited[cur] = struct{}{}
		segment.Length++
	}
}

// Every cell of the segment must have only sea (or its own cells)
// around it, diagonals included.
func (v *Validator) checkIsolation(segment Segment) *Result {
	cells := segment.Cells()
	members := make(map[Coordinates]struct{}, len(cells))
	for _, cell := range cells {
		members[cell] = struct{}{}
	}

	for _, cell := range cells {
		for _, offset := range neighborOffsets {
			neighbor := NewCoordinates(cell.Row+offset[0], cell.Col+offset[1])
			if !v.isShip(neighbor.Row, neighbor.Col) {
				continue
			}
			if _, ok := members[neighbor]; !ok {
				res := invalid(ReasonTouchingShips, neighbor)
				return &res
			}
		}
	}
	return nil
}

func (v *Validator) tallySegment(segment Segment) *Result {
	required, ok := v.fleet[segment.Length]
	if !ok {
		res := invalid(ReasonUnexpectedLength, segment.Start)
		return &res
	}

	v.tally[segment.Length]++
	if v.tally[segment.Length] > required {
		res := invalid(ReasonTooManyShips, segment.Start)
		return &res
	}

	v.segments = append(v.segments, segment)
	return nil
}

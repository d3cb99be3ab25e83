package battleship

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-validator/internal/error"
)

func TestParseSymbolRows(t *testing.T) {
	tests := []struct {
		name        string
		rows        []string
		expected    Grid
		expectedErr bool
	}{
		{
			name:     "ships and sea",
			rows:     []string{"*.", ".*"},
			expected: Grid{{CellShip, CellSea}, {CellSea, CellShip}},
		},
		{
			name:     "unknown symbol is kept for the validator",
			rows:     []string{"*#"},
			expected: Grid{{CellShip, CellUnknown}},
		},
		{
			name:        "jagged rows",
			rows:        []string{"**", "*"},
			expectedErr: true,
		},
		{
			name:        "no rows",
			rows:        []string{},
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			grid, err := ParseSymbolRows(test.rows)
			if test.expectedErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, cerr.ErrMalformedInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, grid)
		})
	}
}

func TestParseSymbolRowsUnknownIsInvalid(t *testing.T) {
	grid, err := ParseSymbolRows([]string{"*.", ".x"})
	require.NoError(t, err)

	res, err := Validate(grid, Fleet{1: 1})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonUnknownCell, res.Reason)
	assert.Equal(t, &Coordinates{Row: 1, Col: 1}, res.Cell)
}

func TestGridString(t *testing.T) {
	grid := Grid{{CellShip, CellSea}, {CellVisited, CellUnknown}}
	assert.Equal(t, "*.\n*?", grid.String())
}

func TestGridDimensions(t *testing.T) {
	rows, cols, err := NewGrid(3, 4).Dimensions()
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)

	_, _, err = Grid{{0}, {0, 0}}.Dimensions()
	assert.True(t, errors.Is(err, cerr.ErrMalformedInput))
}

func TestGridClone(t *testing.T) {
	grid := Grid{{CellShip}}
	clone := grid.Clone()
	clone[0][0] = CellSea

	assert.Equal(t, CellShip, grid[0][0])
	assert.False(t, grid.InBounds(1, 0))
	assert.False(t, grid.InBounds(0, -1))
	assert.True(t, grid.InBounds(0, 0))
}

func TestGridJSON(t *testing.T) {
	grid := Grid{{CellShip, CellSea}, {CellSea, CellSea}}

	data, err := json.Marshal(grid)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,0],[0,0]]`, string(data))

	var decoded Grid
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, grid, decoded)
}

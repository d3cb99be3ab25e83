package battleship

import (
	"sort"

	cerr "github.com/saeidalz13/battleship-validator/internal/error"
)

const (
	FleetPresetClassic = "classic"
	FleetPresetEasy    = "easy"
	FleetPresetNormal  = "normal"
	FleetPresetHard    = "hard"
)

const (
	GridSizeClassic int = 10
	GridSizeEasy    int = 5
	GridSizeNormal  int = 6
	GridSizeHard    int = 7
)

// Ship lengths used by the difficulty presets
const (
	ShipLengthDestroyer  = 2
	ShipLengthCruiser    = 3
	ShipLengthBattleship = 4
)

// Fleet maps a ship length to the number of ships of that length.
type Fleet map[int]int

// Four 1-cell, three 2-cell, two 3-cell and one 4-cell ship.
func DefaultFleet() Fleet {
	return Fleet{1: 4, 2: 3, 3: 2, 4: 1}
}

type FleetPreset struct {
	Name     string `json:"name"`
	GridSize int    `json:"grid_size"`
	Fleet    Fleet  `json:"fleet"`
}

func difficultyFleet() Fleet {
	return Fleet{ShipLengthDestroyer: 1, ShipLengthCruiser: 1, ShipLengthBattleship: 1}
}

// returns the presets in a stable order, classic first.
func FleetPresets() []FleetPreset {
	return []FleetPreset{
		{Name: FleetPresetClassic, GridSize: GridSizeClassic, Fleet: DefaultFleet()},
		{Name: FleetPresetEasy, GridSize: GridSizeEasy, Fleet: difficultyFleet()},
		{Name: FleetPresetNormal, GridSize: GridSizeNormal, Fleet: difficultyFleet()},
		{Name: FleetPresetHard, GridSize: GridSizeHard, Fleet: difficultyFleet()},
	}
}

func FleetForPreset(name string) (Fleet, error) {
	for _, preset := range FleetPresets() {
		if preset.Name == name {
			return preset.Fleet, nil
		}
	}
	return nil, cerr.ErrUnknownFleetPreset(name)
}

func (f Fleet) Clone() Fleet {
	clone := make(Fleet, len(f))
	for length, count := range f {
		clone[length] = count
	}
	return clone
}

// Drops the entries with zero count. A fleet of {1: 0} requires
// the same ships as an empty fleet.
func (f Fleet) Normalize() Fleet {
	normalized := make(Fleet, len(f))
	for length, count := range f {
		if count != 0 {
			normalized[length] = count
		}
	}
	return normalized
}

func (f Fleet) Validate() error {
	for _, length := range f.Lengths() {
		if length < 1 || f[length] < 0 {
			return cerr.ErrInvalidFleetEntry(length, f[length])
		}
	}
	return nil
}

// Compares the fleets ignoring zero-count entries.
func (f Fleet) Equal(other Fleet) bool {
	a, b := f.Normalize(), other.Normalize()
	if len(a) != len(b) {
		return false
	}

	for length, count := range a {
		if b[length] != count {
			return false
		}
	}
	return true
}

// Total number of ships in the fleet
func (f Fleet) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

// Total number of ship cells the fleet occupies
func (f Fleet) Cells() int {
	cells := 0
	for length, count := range f {
		cells += length * count
	}
	return cells
}

func (f Fleet) Lengths() []int {
	lengths := make([]int, 0, len(f))
	for length := range f {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)
	return lengths
}

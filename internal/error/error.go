package error

import (
	"errors"
	"fmt"
)

// Signals a caller contract breach (empty or jagged grid). Game rule
// violations are never reported through this error.
var ErrMalformedInput = errors.New("malformed input")

func ErrGridEmpty() error {
	return fmt.Errorf("%w: grid must have at least one row", ErrMalformedInput)
}

func ErrGridRowEmpty(row int) error {
	return fmt.Errorf("%w: grid row is empty\trow: %d", ErrMalformedInput, row)
}

func ErrGridNotRectangular(row, got, want int) error {
	return fmt.Errorf("%w: grid is not rectangular\trow: %d\tcols: %d\texpected: %d", ErrMalformedInput, row, got, want)
}

func ErrGridAndSymbolsBothSet() error {
	return fmt.Errorf("%w: only one of grid or symbols can be set", ErrMalformedInput)
}

func ErrInvalidFleetEntry(length, count int) error {
	return fmt.Errorf("%w: fleet entry must have length >= 1 and count >= 0\tlength: %d\tcount: %d", ErrMalformedInput, length, count)
}

func ErrUnknownFleetPreset(preset string) error {
	return fmt.Errorf("fleet preset does not exist, preset: %s", preset)
}

func ErrFleetAndPresetBothSet() error {
	return fmt.Errorf("%w: only one of fleet or preset can be set", ErrMalformedInput)
}

func ErrUnknownOrientation(orientation string) error {
	return fmt.Errorf("orientation must be single, horizontal or vertical, got: %s", orientation)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}

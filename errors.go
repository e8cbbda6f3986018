package gridpath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is matched by every ConfigError.
	ErrInvalidDimensions = errors.New("gridpath: invalid grid dimensions")
	// ErrInvalidPath is returned by ValidatePath.
	ErrInvalidPath = errors.New("gridpath: invalid path")
	// ErrOutOfBounds reports a query coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridpath: coordinate out of bounds")
)

// ConfigError describes a matrix that does not match the declared grid size.
// Row is -1 when the error concerns the grid as a whole.
type ConfigError struct {
	Width, Height int
	Row           int
	Got           int
}

func (e *ConfigError) Error() string {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Sprintf("gridpath: grid %dx%d: size must be positive", e.Width, e.Height)
	}
	if e.Row < 0 {
		return fmt.Sprintf("gridpath: grid %dx%d: matrix has %d rows", e.Width, e.Height, e.Got)
	}
	return fmt.Sprintf("gridpath: grid %dx%d: row %d has %d columns", e.Width, e.Height, e.Row, e.Got)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidDimensions }

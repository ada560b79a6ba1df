package charting

import (
	"errors"
	"fmt"
)

// ErrPaletteExhausted indicates a fixed palette has no color for a position.
var ErrPaletteExhausted = errors.New(`palette exhausted`)

// ErrPointOutOfRange indicates a cluster member index outside the points list.
var ErrPointOutOfRange = errors.New(`point index out of range`)

// ErrEmptyPoint indicates a coordinate tuple without components.
var ErrEmptyPoint = errors.New(`point has no coordinates`)

type PaletteError struct {
	Position int
	Size     int
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf(`%v: no color for position %d (palette size %d)`, ErrPaletteExhausted, e.Position, e.Size)
}

func (e *PaletteError) Unwrap() error {
	return ErrPaletteExhausted
}

// PointIndexError reports a point that could not be resolved. Cluster is -1
// for the centers list.
type PointIndexError struct {
	Cluster int
	Index   int
	Len     int
	Err     error
}

func (e *PointIndexError) Error() string {
	if e.Cluster < 0 {
		return fmt.Sprintf(`center %d: %v`, e.Index, e.Err)
	}
	return fmt.Sprintf(`cluster %d: index %d (points: %d): %v`, e.Cluster, e.Index, e.Len, e.Err)
}

func (e *PointIndexError) Unwrap() error {
	return e.Err
}

package lear

import (
	"errors"
	"fmt"
)

// Line range validation errors.
var (
	ErrInvertedRange   = errors.New("line selection is invalid: end precedes start")
	ErrNonPositiveLine = errors.New("line numbers start at 1")
)

// ActError reports a request for an act the play does not have.
type ActError struct {
	Act int
}

// Error implements the error interface.
func (e *ActError) Error() string {
	return fmt.Sprintf("act %d is not present", e.Act)
}

// SceneError reports a request for a scene its act does not have.
type SceneError struct {
	Act   int
	Scene int
}

// Error implements the error interface.
func (e *SceneError) Error() string {
	return fmt.Sprintf("act %d, scene %d is not present", e.Act, e.Scene)
}

// LinesError reports a line range that selects nothing in its scene.
type LinesError struct {
	Act   int
	Scene int
	Lines LineRange
}

// Error implements the error interface.
func (e *LinesError) Error() string {
	return fmt.Sprintf("lines %s are not present in act %d, scene %d", e.Lines, e.Act, e.Scene)
}

// DataLoadError reports embedded scene data that failed to load. It indicates
// a corrupted build rather than a user mistake.
type DataLoadError struct {
	Path string
	Line int // 0 when the failure is not tied to one line
	Err  error
}

// Error implements the error interface.
func (e *DataLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load scene data %s line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load scene data %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// IsUserError reports whether err was caused by user input rather than by
// the program or its data.
func IsUserError(err error) bool {
	var (
		actErr   *ActError
		sceneErr *SceneError
		linesErr *LinesError
	)
	switch {
	case errors.As(err, &actErr), errors.As(err, &sceneErr), errors.As(err, &linesErr):
		return true
	case errors.Is(err, ErrInvertedRange), errors.Is(err, ErrNonPositiveLine):
		return true
	default:
		return false
	}
}

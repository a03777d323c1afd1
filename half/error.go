package half

import (
	"errors"
	"fmt"

	"github.com/pipelined/spiral/pixel"
)

var (
	// ErrNarrow is returned if image is too narrow to be split.
	ErrNarrow = errors.New("image must be at least 2 pixels wide")
	// ErrShapeMismatch is returned if halves have different shapes.
	ErrShapeMismatch = errors.New("halves shapes mismatch")
	// ErrLayout is returned if reducer or shaper can't handle the buffer.
	ErrLayout = errors.New("unsupported layout")
)

// ShapeError is returned when pairer is invoked with halves of different
// shapes.
type ShapeError struct {
	Left  pixel.Shape
	Right pixel.Shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("left half %v, right half %v: %v", e.Left, e.Right, ErrShapeMismatch)
}

// Is checks if error matches ErrShapeMismatch.
func (e *ShapeError) Is(err error) bool {
	return err == ErrShapeMismatch
}

// StageError is returned when one of pipeline stages fails.
type StageError struct {
	Pipeline string
	Stage    string
	Err      error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Pipeline, e.Stage, e.Err)
}

// Unwrap returns the error of failed stage.
func (e *StageError) Unwrap() error {
	return e.Err
}

package half

import (
	"fmt"

	"github.com/pipelined/spiral/pixel"
)

// Layout defines how halves are arranged in paired buffer.
type Layout int

const (
	// Stacked buffer holds left and right halves as two layers.
	Stacked Layout = iota
	// Concatenated buffer holds a single layer where right channels follow
	// left channels at every position.
	Concatenated
	// Single buffer holds only one of the halves.
	Single
)

func (l Layout) String() string {
	switch l {
	case Stacked:
		return "stacked"
	case Concatenated:
		return "concatenated"
	case Single:
		return "single"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// Paired is a buffer prepared for reduction.
type Paired struct {
	Layout Layout
	Layers []*pixel.Image
}

// Pairer arranges two halves into paired buffer.
type Pairer struct {
	layout    Layout
	side      Side
	dropAlpha bool
}

// Stack returns pairer which keeps both halves as layers, so the reducer
// can combine every pixel with its pair channel by channel.
func Stack() Pairer {
	return Pairer{layout: Stacked}
}

// ChannelConcat returns pairer which appends channels of right half after
// channels of left half. If dropAlpha is set, alpha channel is removed from
// both halves first.
func ChannelConcat(dropAlpha bool) Pairer {
	return Pairer{layout: Concatenated, dropAlpha: dropAlpha}
}

// Passthrough returns pairer which keeps one side and ignores the other.
func Passthrough(side Side) Pairer {
	return Pairer{layout: Single, side: side}
}

// Layout returns layout of paired buffers.
func (p Pairer) Layout() Layout {
	return p.layout
}

// Pair arranges halves. Halves must have the same shape.
func (p Pairer) Pair(h Halves) (Paired, error) {
	if h.Left == nil || h.Right == nil {
		return Paired{}, fmt.Errorf("pair with missing half: %w", ErrShapeMismatch)
	}
	if h.Left.Shape() != h.Right.Shape() {
		return Paired{}, &ShapeError{Left: h.Left.Shape(), Right: h.Right.Shape()}
	}
	switch p.layout {
	case Stacked:
		return Paired{
			Layout: Stacked,
			Layers: []*pixel.Image{h.Left, h.Right},
		}, nil
	case Concatenated:
		left, right := h.Left, h.Right
		if p.dropAlpha && left.HasAlpha() {
			left, right = left.DropChannel(pixel.Alpha), right.DropChannel(pixel.Alpha)
		}
		concat, err := left.ConcatChannels(right)
		if err != nil {
			return Paired{}, err
		}
		return Paired{
			Layout: Concatenated,
			Layers: []*pixel.Image{concat},
		}, nil
	default:
		return Paired{
			Layout: Single,
			Layers: []*pixel.Image{h.Side(p.side)},
		}, nil
	}
}

func (p Pairer) String() string {
	switch p.layout {
	case Stacked:
		return "stack"
	case Concatenated:
		if p.dropAlpha {
			return "channel concat without alpha"
		}
		return "channel concat"
	default:
		return fmt.Sprintf("passthrough %v", p.side)
	}
}

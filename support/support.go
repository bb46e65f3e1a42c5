package support

import "fmt"

// Support is the directional evidence count for one graph element.
type Support struct {
	// Forward and Reverse count full observations per strand.
	Forward float64
	Reverse float64

	// Left and Right count partial (clipped) observations per node end.
	Left  float64
	Right float64

	// Quality is log-scaled, so aggregation adds it.
	Quality float64
}

// Make builds a Support from the common forward/reverse/quality triple.
func Make(forward, reverse, quality float64) Support {
	return Support{Forward: forward, Reverse: reverse, Quality: quality}
}

// Total is the strand-summed observation count used for ordering.
func (s Support) Total() float64 { return s.Forward + s.Reverse }

// Less orders supports by Total.
func (s Support) Less(o Support) bool { return s.Total() < o.Total() }

// String renders the forward and reverse counts as "F,R".
func (s Support) String() string { return fmt.Sprintf("%g,%g", s.Forward, s.Reverse) }

// Min takes the componentwise minimum of two supports across every field.
func Min(a, b Support) Support {
	return Support{
		Forward: minF(a.Forward, b.Forward),
		Reverse: minF(a.Reverse, b.Reverse),
		Left:    minF(a.Left, b.Left),
		Right:   minF(a.Right, b.Right),
		Quality: minF(a.Quality, b.Quality),
	}
}

// Max takes the componentwise maximum of two supports across every field.
func Max(a, b Support) Support {
	return Support{
		Forward: maxF(a.Forward, b.Forward),
		Reverse: maxF(a.Reverse, b.Reverse),
		Left:    maxF(a.Left, b.Left),
		Right:   maxF(a.Right, b.Right),
		Quality: maxF(a.Quality, b.Quality),
	}
}

// Add sums every field of the two supports; log-scaled quality adds
// directly rather than multiplying.
func Add(a, b Support) Support {
	return Support{
		Forward: a.Forward + b.Forward,
		Reverse: a.Reverse + b.Reverse,
		Left:    a.Left + b.Left,
		Right:   a.Right + b.Right,
		Quality: a.Quality + b.Quality,
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

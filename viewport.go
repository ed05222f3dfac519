package mandel

import (
	"slices"
	"strings"
)

// Viewport is a rectangle of the complex plane.
// UpperLeft holds the minimum real and maximum imaginary part, LowerRight the
// maximum real and minimum imaginary part.
type Viewport struct {
	UpperLeft, LowerRight complex128
}

// FieldMap samples v on a reRes × imRes grid.
func (v Viewport) FieldMap(reRes, imRes int) (*FieldMap, error) {
	return NewFieldMap(v.UpperLeft, v.LowerRight, reRes, imRes)
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// The whole set
	FullSet = Viewport{
		UpperLeft:  complex(-2.0, 1.0),
		LowerRight: complex(1.0, -1.0),
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Viewport{
		UpperLeft:  complex(-0.8, 0.15),
		LowerRight: complex(-0.7, 0.05),
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Viewport{
		UpperLeft:  complex(-1.85, -0.02),
		LowerRight: complex(-1.75, -0.10),
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Viewport{
		UpperLeft:  complex(-0.7435, 0.1325),
		LowerRight: complex(-0.7420, 0.1310),
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Viewport{
		UpperLeft:  complex(-0.7480, 0.0980),
		LowerRight: complex(-0.7450, 0.0950),
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Viewport{
		UpperLeft:  complex(-0.7400, 0.1850),
		LowerRight: complex(-0.7350, 0.1800),
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Viewport{
		UpperLeft:  complex(-1.7390, -0.0220),
		LowerRight: complex(-1.7375, -0.0235),
	}
)

var landmarks = map[string]Viewport{
	"full-set":                FullSet,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}

// Landmark looks up a landmark viewport by its kebab-case name, ignoring case.
func Landmark(name string) (Viewport, bool) {
	v, ok := landmarks[strings.ToLower(name)]
	return v, ok
}

// LandmarkNames returns the landmark names in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for name := range landmarks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

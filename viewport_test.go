package mandel

import (
	"slices"
	"testing"
)

func TestLandmark(t *testing.T) {
	tests := []struct {
		name   string
		want   Viewport
		wantOK bool
	}{
		{"seahorse-valley", SeahorseValley, true},
		{"Seahorse-Valley", SeahorseValley, true},
		{"full-set", FullSet, true},
		{"atlantis", Viewport{}, false},
		{"", Viewport{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Landmark(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Landmark(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLandmarkNames(t *testing.T) {
	names := LandmarkNames()
	if len(names) != len(landmarks) {
		t.Fatalf("LandmarkNames() returned %d names, want %d", len(names), len(landmarks))
	}
	if !slices.IsSorted(names) {
		t.Errorf("LandmarkNames() = %v, want sorted", names)
	}
}

func TestLandmarkOrientation(t *testing.T) {
	for _, name := range LandmarkNames() {
		v, _ := Landmark(name)
		if real(v.UpperLeft) >= real(v.LowerRight) {
			t.Errorf("%s: upper-left real %v not left of %v", name, real(v.UpperLeft), real(v.LowerRight))
		}
		if imag(v.UpperLeft) <= imag(v.LowerRight) {
			t.Errorf("%s: upper-left imag %v not above %v", name, imag(v.UpperLeft), imag(v.LowerRight))
		}
	}
}

func TestViewportFieldMap(t *testing.T) {
	fm, err := FullSet.FieldMap(3, 2)
	if err != nil {
		t.Fatalf("FieldMap: %v", err)
	}
	p, err := fm.Point(4)
	if err != nil {
		t.Fatalf("Point(4): %v", err)
	}
	if p != complex(-1.0, 0.0) {
		t.Errorf("Point(4) = %v, want (-1+0i)", p)
	}
}

package parser

import "fmt"

// ValidateResolution checks a rasterization resolution per spec section
// 4.5: "Resolution <= 0 is a usage error."
func ValidateResolution(r float64) error {
	if r <= 0 {
		return &UnsupportedResolutionError{Resolution: r}
	}
	return nil
}

// ValidateSurface checks a Surface's internal consistency: every face
// must reference valid indices into Points, per spec section 3's
// invariant "face references resolve". This is a defense-in-depth check
// for surfaces built outside the ingester (e.g. by tests or future
// callers); the ingester itself never produces a Surface that fails it.
func ValidateSurface(s *Surface) error {
	if s == nil {
		return fmt.Errorf("surface is nil")
	}
	n := len(s.Points)
	for i, f := range s.Faces {
		if f.P1 < 0 || f.P1 >= n || f.P2 < 0 || f.P2 >= n || f.P3 < 0 || f.P3 >= n {
			return fmt.Errorf("surface %q: face %d references out-of-range point index", s.Name, i)
		}
	}
	return nil
}

// ValidateGridBounds checks that min <= max on every axis, per spec
// section 3's GridBounds invariant.
func ValidateGridBounds(b GridBounds) error {
	if b.MinX > b.MaxX || b.MinY > b.MaxY || b.MinZ > b.MaxZ {
		return fmt.Errorf("invalid grid bounds: min exceeds max")
	}
	return nil
}

package sim

import (
	"fmt"
	"math"
)

// Default eye parameters. The range is a fraction of the world's size,
// the angle is in radians. Values between 3 and ~11 cells work well;
// more cells make the vision crisper but the evolution slower.
const (
	FovRange = 0.25
	FovAngle = math.Pi / 4
	Cells    = 9
)

// Eye converts the positions of nearby foods into a fixed-length
// sensory vector: one "energy" value per angular slice of the field of
// view. It is the only input the brain receives.
type Eye struct {
	fovRange float32
	fovAngle float32
	cells    int
}

// NewEye creates an eye with arbitrary parameters; all of them must be
// positive. Arbitrary eyes mostly matter for testing, the simulation
// itself uses DefaultEye for every animal.
func NewEye(fovRange, fovAngle float32, cells int) Eye {
	if fovRange <= 0 {
		panic(fmt.Sprintf("sim: eye fov range %v must be positive", fovRange))
	}
	if fovAngle <= 0 {
		panic(fmt.Sprintf("sim: eye fov angle %v must be positive", fovAngle))
	}
	if cells <= 0 {
		panic(fmt.Sprintf("sim: eye cell count %d must be positive", cells))
	}
	return Eye{fovRange: fovRange, fovAngle: fovAngle, cells: cells}
}

// DefaultEye returns the eye every animal is born with.
func DefaultEye() Eye {
	return NewEye(FovRange, FovAngle, Cells)
}

// Cells returns the number of photoreceptors, which is also the
// brain's input size.
func (e Eye) Cells() int {
	return e.cells
}

// ProcessVision returns one energy value per cell. For each food
// within the field of view, an energy of (range - dist) / range is
// added to the cell its angle falls into, so closer food produces a
// stronger signal and several foods can stack in one cell.
func (e Eye) ProcessVision(position Point, rotation float32, foods []Food) []float32 {
	cells := make([]float32, e.cells)
	facing := foldAngle(rotation)
	half := e.fovAngle / 2

	for _, food := range foods {
		vx := food.position.X - position.X
		vy := food.position.Y - position.Y

		d2 := vx*vx + vy*vy
		dist := float32(math.Sqrt(float64(d2)))
		if dist == 0 || dist >= e.fovRange {
			continue
		}

		// Angle of the food relative to the Y axis, minus our own
		// rotation, wrapped back into [-pi, pi]. The vector is
		// normalized first so that boundary angles land in the same
		// cell regardless of how far away the food is.
		nx := vx / dist
		ny := vy / dist
		angle := float32(math.Atan2(float64(-nx), float64(ny)))
		angle = wrapAngle(angle - facing)

		if angle < -half || angle > half {
			continue
		}

		// Remap from [-fov/2, +fov/2] to [0, 1], then scale by the
		// cell count. An angle exactly at the far edge would index one
		// past the end, hence the clamp.
		cell := int((angle + half) / e.fovAngle * float32(e.cells))
		if cell > e.cells-1 {
			cell = e.cells - 1
		}

		cells[cell] += (e.fovRange - dist) / e.fovRange
	}

	return cells
}

// foldAngle maps an arbitrary rotation onto the unit circle and back,
// yielding the equivalent angle in [-pi, pi].
func foldAngle(a float32) float32 {
	s := float32(math.Sin(float64(a)))
	c := float32(math.Cos(float64(a)))
	return float32(math.Atan2(float64(s), float64(c)))
}

// wrapAngle folds an angle into [-pi, pi] by whole turns.
func wrapAngle(a float32) float32 {
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

package scene

import (
	"fmt"

	"github.com/ChicagoDave/solaris/pkg/geo"
)

// Pointer tilt of the whole map, in degrees at the surface edges.
const (
	TiltMaxX    = 4.0
	TiltMaxY    = 6.0
	Perspective = 1000.0
)

// Tilt is the 3D rotation applied to the map surface, in degrees.
type Tilt struct {
	RotateX float64 `json:"rotate_x"`
	RotateY float64 `json:"rotate_y"`
}

// TiltAt returns the tilt for a pointer at p on a width×height surface. The
// centre is flat; the top edge gives RotateX = TiltMaxX/2 and the right edge
// RotateY = TiltMaxY/2.
func TiltAt(width, height float64, p geo.Point2D) Tilt {
	if width <= 0 || height <= 0 {
		return Tilt{}
	}
	x := p.X / width
	y := p.Y / height
	return Tilt{
		RotateX: (0.5 - y) * TiltMaxX,
		RotateY: (x - 0.5) * TiltMaxY,
	}
}

// IsZero reports whether the surface is flat.
func (t Tilt) IsZero() bool {
	return t.RotateX == 0 && t.RotateY == 0
}

// CSS renders the tilt as a CSS transform.
func (t Tilt) CSS() string {
	return fmt.Sprintf("perspective(%.0fpx) rotateX(%.3fdeg) rotateY(%.3fdeg)",
		Perspective, t.RotateX, t.RotateY)
}

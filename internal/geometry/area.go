// Package geometry holds the circle-area sample operation and its HTTP endpoint.
package geometry

import "math"

// CircleArea returns the area of a circle with the given radius.
func CircleArea(radius float64) float64 {
	return math.Pi * (radius * radius)
}

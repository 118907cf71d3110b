/*
	This file defines the integer coordinates used within voxmask.
*/

package voxmask

import "fmt"

// Point3d is a 3d point in the signed 64-bit voxel lattice.
type Point3d [3]int64

// String returns a formatted coordinate triple.
func (p Point3d) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p[0], p[1], p[2])
}

// Add returns the addition of two points.
func (p Point3d) Add(q Point3d) Point3d {
	return Point3d{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

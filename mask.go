package sparsetree

import "github.com/mirstar13/sparsetree/internal/simd"

// octChildMask[c] is the fixed mask an AABB must satisfy (via
// mask&octChildMask[c]==octChildMask[c]) to overlap octant c. Built
// once at init from the child-index bit convention: bit i of c clear
// means octant c lies on the negative side of axis i (test the
// lower/min mask bit for that axis), bit i set means the positive
// side (test the upper/max mask bit).
var octChildMask [8]uint8

// quadChildMask is the 2-D analogue, C=4.
var quadChildMask [4]uint8

func init() {
	for c := 0; c < 8; c++ {
		var m uint8
		for axis := 0; axis < 3; axis++ {
			if c&(1<<axis) == 0 {
				m |= 1 << axis
			} else {
				m |= 1 << (axis + 3)
			}
		}
		octChildMask[c] = m
	}
	for c := 0; c < 4; c++ {
		var m uint8
		for axis := 0; axis < 2; axis++ {
			if c&(1<<axis) == 0 {
				m |= 1 << axis
			} else {
				m |= 1 << (axis + 2)
			}
		}
		quadChildMask[c] = m
	}
}

func b2u8(cond bool) uint8 {
	if cond {
		return 1
	}
	return 0
}

// maskOf3 summarizes which halves of a node (split at center) bounds
// touches: bits 0-2 are set when bounds reaches the negative half of
// axis x/y/z (min <= center), bits 3-5 when it reaches the positive
// half (max >= center). Both comparisons are inclusive, so a bound
// exactly on the center is reported on both sides, by design (see
// RangeVisitor3 on duplicate visitation).
func maskOf3(bounds AABB3, center Vec3) uint8 {
	if simd.Wide {
		return b2u8(bounds.Min.X <= center.X) |
			b2u8(bounds.Min.Y <= center.Y)<<1 |
			b2u8(bounds.Min.Z <= center.Z)<<2 |
			b2u8(bounds.Max.X >= center.X)<<3 |
			b2u8(bounds.Max.Y >= center.Y)<<4 |
			b2u8(bounds.Max.Z >= center.Z)<<5
	}
	var m uint8
	if bounds.Min.X <= center.X {
		m |= 1 << 0
	}
	if bounds.Min.Y <= center.Y {
		m |= 1 << 1
	}
	if bounds.Min.Z <= center.Z {
		m |= 1 << 2
	}
	if bounds.Max.X >= center.X {
		m |= 1 << 3
	}
	if bounds.Max.Y >= center.Y {
		m |= 1 << 4
	}
	if bounds.Max.Z >= center.Z {
		m |= 1 << 5
	}
	return m
}

// maskOf2 is the 2-D analogue of maskOf3: bits 0-1 min side, bits 2-3
// max side.
func maskOf2(bounds AABB2, center Vec2) uint8 {
	if simd.Wide {
		return b2u8(bounds.Min.X <= center.X) |
			b2u8(bounds.Min.Y <= center.Y)<<1 |
			b2u8(bounds.Max.X >= center.X)<<2 |
			b2u8(bounds.Max.Y >= center.Y)<<3
	}
	var m uint8
	if bounds.Min.X <= center.X {
		m |= 1 << 0
	}
	if bounds.Min.Y <= center.Y {
		m |= 1 << 1
	}
	if bounds.Max.X >= center.X {
		m |= 1 << 2
	}
	if bounds.Max.Y >= center.Y {
		m |= 1 << 3
	}
	return m
}

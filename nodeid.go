package sparsetree

// nodeID is a bit-packed key encoding a node's root-to-node path. The
// root is the literal value 1 (never 0); a child's id is built by
// shifting the parent left by k bits and OR-ing in the child index.
// Node ids are never exposed outside this package.
type nodeID uint32

const rootID nodeID = 1

func childID(parent nodeID, idx uint8, k uint) nodeID {
	return (parent << k) | nodeID(idx)
}

// maxDepthFor returns the deepest level a k-bit-per-level id of width
// bits can address, leaving one guard bit for the root marker.
func maxDepthFor(bits, k uint) int {
	return int((bits - 1) / k)
}

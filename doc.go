// Package sparsetree implements two sparse spatial indices, an octree
// (3-D) and a quadtree (2-D), that store caller-supplied values keyed
// by axis-aligned bounding boxes and answer raycast, range, and
// nearest-neighbor queries.
//
// Both trees are single-threaded per instance: insertion must never
// overlap with any other operation on the same tree, but concurrent
// queries against different QueryCache values are safe. Node
// identifiers, the sparse occupancy/bucket maps, and the priority
// queue used for nearest-neighbor search are internal; callers only
// ever see the payload type they stored.
package sparsetree

package sparsetree

import "testing"

func TestChildID(t *testing.T) {
	id := childID(rootID, 5, octreeK)
	if id != (1<<3)|5 {
		t.Errorf("childID = %d, want %d", id, (1<<3)|5)
	}

	grandchild := childID(id, 2, octreeK)
	want := (nodeID(1)<<3|5)<<3 | 2
	if grandchild != want {
		t.Errorf("grandchild id = %d, want %d", grandchild, want)
	}
}

func TestMaxDepthFor(t *testing.T) {
	if got := maxDepthFor(32, octreeK); got != 10 {
		t.Errorf("octree maxDepthFor(32,3) = %d, want 10", got)
	}
	if got := maxDepthFor(32, quadtreeK); got != 15 {
		t.Errorf("quadtree maxDepthFor(32,2) = %d, want 15", got)
	}
}

func TestRootIDIsNeverChildID(t *testing.T) {
	for idx := uint8(0); idx < 8; idx++ {
		if childID(rootID, idx, octreeK) == rootID {
			t.Errorf("childID(root, %d) collided with rootID", idx)
		}
	}
}

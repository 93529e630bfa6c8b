// Command treebench drives an Octree and a Quadtree through
// insertion, range, raycast, and nearest-neighbor queries over a
// synthetic point set, printing elapsed time for each phase. It has no
// rendering or visualization surface; it exists to exercise the
// library end to end the way a caller would wire it up.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime/pprof"
	"time"

	"github.com/mirstar13/sparsetree"
)

type benchPoint struct {
	id int
	p  sparsetree.Vec3
}

type benchIntersecter struct{}

func (benchIntersecter) Intersect(ray sparsetree.Ray3, payload benchPoint, bounds sparsetree.AABB3) (bool, float32) {
	hit, tEnter, _ := ray.IntersectAABB(bounds)
	return hit, tEnter
}

type benchDistance struct{}

func (benchDistance) DistanceSquared(point sparsetree.Vec3, payload benchPoint, bounds sparsetree.AABB3) float32 {
	d := payload.p.Sub(point)
	return d.Dot(d)
}

type countingRangeVisitor struct{ n int }

func (v *countingRangeVisitor) Visit(payload benchPoint, bounds, query sparsetree.AABB3) bool {
	v.n++
	return true
}

func main() {
	count := flag.Int("n", 100000, "number of points to insert")
	objectsPerNode := flag.Int("objects-per-node", 8, "subdivision threshold")
	maxDepth := flag.Int("max-depth", 10, "maximum tree depth")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
		fmt.Printf("CPU profiling enabled, writing to %s\n", *cpuprofile)
	}

	if *memprofile != "" {
		defer func() {
			f, err := os.Create(*memprofile)
			if err != nil {
				fmt.Printf("could not create memory profile: %v\n", err)
				return
			}
			defer f.Close()
			if err := pprof.WriteHeapProfile(f); err != nil {
				fmt.Printf("could not write memory profile: %v\n", err)
			}
			fmt.Printf("Memory profile written to %s\n", *memprofile)
		}()
	}

	fmt.Println("=== sparsetree bench ===")
	fmt.Printf("points=%d objectsPerNode=%d maxDepth=%d\n\n", *count, *objectsPerNode, *maxDepth)

	bounds := sparsetree.NewAABB3(sparsetree.Vec3{X: -1000, Y: -1000, Z: -1000}, sparsetree.Vec3{X: 1000, Y: 1000, Z: 1000})
	tree, err := sparsetree.NewOctree[benchPoint](bounds, *objectsPerNode, *maxDepth, *count)
	if err != nil {
		fmt.Printf("NewOctree: %v\n", err)
		return
	}

	pts := make([]sparsetree.Vec3, *count)
	for i := range pts {
		// Deterministic low-discrepancy-ish fill without math/rand, so
		// runs are reproducible without seeding.
		a := float64(i) * 12.9898
		b := float64(i) * 78.233
		pts[i] = sparsetree.Vec3{
			X: float32(math.Mod(a, 2000) - 1000),
			Y: float32(math.Mod(b, 2000) - 1000),
			Z: float32(math.Mod(a+b, 2000) - 1000),
		}
	}

	start := time.Now()
	for i, p := range pts {
		tree.InsertPoint(benchPoint{id: i, p: p}, p)
	}
	fmt.Printf("insert:   %v (%d objects)\n", time.Since(start), tree.Len())

	start = time.Now()
	var rv countingRangeVisitor
	tree.Range(sparsetree.NewAABB3(sparsetree.Vec3{X: -100, Y: -100, Z: -100}, sparsetree.Vec3{X: 100, Y: 100, Z: 100}), &rv)
	fmt.Printf("range:    %v (%d hits)\n", time.Since(start), rv.n)

	start = time.Now()
	ray := sparsetree.NewRay3(sparsetree.Vec3{X: -2000, Y: 0, Z: 0}, sparsetree.Vec3{X: 1, Y: 0, Z: 0})
	_, _, ok := tree.Raycast(ray, benchIntersecter{}, 0)
	fmt.Printf("raycast:  %v (hit=%v)\n", time.Since(start), ok)

	start = time.Now()
	cache := sparsetree.NewQueryCache3[benchPoint]()
	nv := &limitVisitor{limit: 10}
	tree.NearestCached(cache, sparsetree.Vec3{}, 500, nv, benchDistance{})
	fmt.Printf("nearest:  %v (%d visited)\n", time.Since(start), nv.n)
}

type limitVisitor struct {
	n     int
	limit int
}

func (v *limitVisitor) Visit(payload benchPoint) bool {
	v.n++
	return v.n < v.limit
}

package portal

import (
	"errors"
	"testing"

	"github.com/akmonengine/portal/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

func createPortals(t *testing.T, count int) []*Portal {
	t.Helper()
	portals := make([]*Portal, count)
	for i := range portals {
		transform := geometry.NewTransform()
		transform.Position = mgl64.Vec3{float64(i) * 2, 0, float64(-i)}
		portals[i] = mustBuild(t, unitSquare(), transform)
	}
	return portals
}

func TestBuildFrustumSets_MatchesSequential(t *testing.T) {
	portals := createPortals(t, 13)
	viewpoint := mgl64.Vec3{3, 1, 8}

	for _, workers := range []int{0, 1, 3, 8, 32} {
		sets := BuildFrustumSets(portals, viewpoint, workers, nil)

		if len(sets) != len(portals) {
			t.Fatalf("workers=%d: got %d sets, want %d", workers, len(sets), len(portals))
		}
		for i, set := range sets {
			if set.Portal != portals[i] || set.Err != nil {
				t.Fatalf("workers=%d: set %d = %+v", workers, i, set)
			}

			expected, _ := portals[i].FrustumPlanes(viewpoint, nil, nil)
			if len(set.Planes) != len(expected) {
				t.Fatalf("workers=%d: set %d has %d planes, want %d", workers, i, len(set.Planes), len(expected))
			}
			for j := range expected {
				if set.Planes[j] != expected[j] {
					t.Errorf("workers=%d: set %d plane %d = %v, want %v", workers, i, j, set.Planes[j], expected[j])
				}
			}
		}
	}
}

func TestBuildFrustumSets_ReusesSets(t *testing.T) {
	portals := createPortals(t, 4)

	sets := BuildFrustumSets(portals, mgl64.Vec3{0, 0, 5}, 2, nil)
	first := &sets[0].Planes[0]

	sets = BuildFrustumSets(portals, mgl64.Vec3{1, 0, 5}, 2, sets)
	if &sets[0].Planes[0] != first {
		t.Error("planes buffer was reallocated between frames")
	}

	shorter := BuildFrustumSets(portals[:2], mgl64.Vec3{0, 0, 5}, 2, sets)
	if len(shorter) != 2 {
		t.Errorf("got %d sets, want 2", len(shorter))
	}
}

func TestBuildFrustumSets_InvalidPortal(t *testing.T) {
	portals := createPortals(t, 2)
	portals = append(portals, &Portal{})

	sets := BuildFrustumSets(portals, mgl64.Vec3{0, 0, 5}, 2, nil)

	if !errors.Is(sets[2].Err, ErrNoPlane) {
		t.Errorf("Err = %v, want %v", sets[2].Err, ErrNoPlane)
	}
	if len(sets[2].Planes) != 0 {
		t.Errorf("an invalid portal should produce no plane, got %d", len(sets[2].Planes))
	}
	if sets[0].Err != nil || sets[1].Err != nil {
		t.Errorf("valid portals should not fail: %v %v", sets[0].Err, sets[1].Err)
	}
}

func TestBuildFrustumSets_SingleWorkerNoAllocation(t *testing.T) {
	portals := createPortals(t, 6)
	viewpoint := mgl64.Vec3{3, 1, 8}
	sets := BuildFrustumSets(portals, viewpoint, 1, nil)

	allocs := testing.AllocsPerRun(100, func() {
		sets = BuildFrustumSets(portals, viewpoint, 1, sets)
	})
	if allocs != 0 {
		t.Errorf("got %v allocations per frame, want 0", allocs)
	}
}

func TestTask(t *testing.T) {
	for _, workers := range []int{0, 1, 4, 20} {
		visited := make([]int, 17)
		task(workers, len(visited), func(i int) {
			visited[i]++
		})

		for i, count := range visited {
			if count != 1 {
				t.Errorf("workers=%d: index %d visited %d times", workers, i, count)
			}
		}
	}
}

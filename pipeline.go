package portal

import (
	"sync"

	"github.com/akmonengine/portal/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// FrustumSet holds the clip planes built through one portal.
type FrustumSet struct {
	Portal *Portal
	Planes []geometry.Plane
	Err    error
}

// BuildFrustumSets builds the clip planes of every portal as seen from viewpoint,
// spreading the portals over workers goroutines.
//
// sets is reused when it holds enough entries, including the capacity of each
// Planes slice, so a caller keeping it across frames does not allocate.
// Each portal only writes to its own entry.
func BuildFrustumSets(portals []*Portal, viewpoint mgl64.Vec3, workers int, sets []FrustumSet) []FrustumSet {
	if cap(sets) < len(portals) {
		grown := make([]FrustumSet, len(portals))
		copy(grown, sets)
		sets = grown
	}
	sets = sets[:len(portals)]

	workers = max(DEFAULT_WORKERS, workers)
	if workers == 1 {
		for i, portal := range portals {
			buildFrustumSet(&sets[i], portal, viewpoint)
		}
		return sets
	}

	buildFrustumSetsParallel(portals, viewpoint, workers, sets)

	return sets
}

// buildFrustumSetsParallel fans the portals out over workers goroutines
func buildFrustumSetsParallel(portals []*Portal, viewpoint mgl64.Vec3, workers int, sets []FrustumSet) {
	task(workers, len(portals), func(i int) {
		buildFrustumSet(&sets[i], portals[i], viewpoint)
	})
}

func buildFrustumSet(set *FrustumSet, portal *Portal, viewpoint mgl64.Vec3) {
	set.Portal = portal
	set.Planes, set.Err = portal.FrustumPlanes(viewpoint, set.Planes[:0], nil)
}

// task splits the indices [0, dataSize) into one contiguous chunk per worker
func task(workersCount int, dataSize int, fn func(i int)) {
	if workersCount <= 1 {
		for i := 0; i < dataSize; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}

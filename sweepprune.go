package plume

import (
	"sort"

	"github.com/akmonengine/plume/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// sweepEntry pairs a body index with its inflated bounding box for the
// duration of one broad-phase pass
type sweepEntry struct {
	index int
	aabb  actor.AABB
}

// inflatedAABB grows the body box by the speculative distance on every
// side, so pairs about to touch are still reported
func inflatedAABB(body *actor.RigidBody, speculative float64) actor.AABB {
	aabb := body.AABB()
	ext := mgl64.Vec2{speculative, speculative}
	aabb.Min = aabb.Min.Sub(ext)
	aabb.Max = aabb.Max.Add(ext)

	return aabb
}

// BroadPhase performs one-axis sweep-and-prune over the bodies' inflated
// AABBs. It reports every pair whose boxes overlap on both axes as a
// canonical (A < B) index pair, never a self pair, never both orders.
func BroadPhase(bodies []*actor.RigidBody, speculative float64) []Pair {
	entries := make([]sweepEntry, 0, len(bodies))
	for i, body := range bodies {
		entries = append(entries, sweepEntry{index: i, aabb: inflatedAABB(body, speculative)})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].aabb.Min.X() < entries[j].aabb.Min.X()
	})

	active := make([]sweepEntry, 0, 16)
	pairs := make([]Pair, 0, len(bodies)/2)

	for _, cur := range entries {
		// Evict entries that ended before the current one starts
		n := 0
		for _, e := range active {
			if e.aabb.Max.X() >= cur.aabb.Min.X() {
				active[n] = e
				n++
			}
		}
		active = active[:n]

		for _, e := range active {
			if !e.aabb.Overlaps(cur.aabb) {
				continue
			}

			if e.index < cur.index {
				pairs = append(pairs, Pair{A: e.index, B: cur.index})
			} else {
				pairs = append(pairs, Pair{A: cur.index, B: e.index})
			}
		}

		active = append(active, cur)
	}

	return pairs
}

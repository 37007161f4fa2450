package gen

import (
	"math/rand/v2"

	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

// centerSearch is the rejection sampler shared by the oil and mineral
// passes. Centers are spread out by a minimum distance and thinned by a
// per-position acceptance draw.
type centerSearch struct {
	expected uint32 // centers wanted
	attempts uint32 // positions drawn at most
	minDist  uint32 // tiles between accepted centers

	suitable func(tilemap.TilePos) bool
	accept   func(pos tilemap.TilePos, x, y uint16) bool
}

// run draws candidate positions from r. Running out of attempts before
// reaching expected is normal and yields fewer centers.
func (s centerSearch) run(tm *tilemap.TileMap, r *rand.Rand) []tilemap.TilePos {
	var centers []tilemap.TilePos
	span := tm.GlobalSize()
	minSq := s.minDist * s.minDist
	for attempt := uint32(0); uint32(len(centers)) < s.expected && attempt < s.attempts; attempt++ {
		x := uint16(r.IntN(span))
		y := uint16(r.IntN(span))
		cand := tilemap.FromGlobal(x, y)
		if !s.suitable(cand) || tooClose(cand, centers, minSq) {
			continue
		}
		if s.accept(cand, x, y) {
			centers = append(centers, cand)
		}
	}
	return centers
}

func tooClose(p tilemap.TilePos, centers []tilemap.TilePos, minSq uint32) bool {
	for _, c := range centers {
		if p.SqrDistance(c) < minSq {
			return true
		}
	}
	return false
}

// clusterGrowth grows one deposit outward from its center.
type clusterGrowth struct {
	minSize, maxSize uint8
	sizeChannel      uint32 // channels sizeChannel+1 .. sizeChannel+span size the cluster
	streamIndex      uint32 // first channel of the neighbor-shuffle stream
	skipChannel      uint32
	skip             func(sample uint64) bool

	suitable func(tilemap.TilePos) bool
}

// size draws the target size: min plus one coin flip per unit of span.
func (g clusterGrowth) size(nz *noise.Discrete, x, y uint16) int {
	n := int(g.minSize)
	for i := uint32(1); i <= uint32(g.maxSize-g.minSize); i++ {
		n += int(nz.Noise(uint32(x), uint32(y), g.sizeChannel+i) & 1)
	}
	return n
}

// grow returns the tiles of the cluster around center, center first. The
// frontier may run dry before the target size is reached; the cluster is
// then smaller than minSize.
func (g clusterGrowth) grow(tm *tilemap.TileMap, nz *noise.Discrete, center tilemap.TilePos) []tilemap.TilePos {
	cx, cy := center.ToGlobal()
	target := g.size(nz, cx, cy)
	shuffle := rand.New(noise.NewStream(nz, uint32(cx), uint32(cy), g.streamIndex))

	cluster := []tilemap.TilePos{center}
	visited := map[tilemap.TilePos]struct{}{center: {}}
	frontier := []tilemap.TilePos{center}
	neighbors := make([]tilemap.TilePos, 0, 4)

	for len(frontier) > 0 && len(cluster) < target {
		cur := frontier[0]
		frontier = frontier[1:]

		neighbors = tm.AppendNeighbors(neighbors[:0], cur, false)
		shuffle.Shuffle(len(neighbors), func(i, j int) {
			neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
		})
		for _, n := range neighbors {
			nx, ny := n.ToGlobal()
			if g.skip(nz.Noise(uint32(nx), uint32(ny), g.skipChannel)) {
				continue
			}
			if _, ok := visited[n]; ok || !g.suitable(n) {
				continue
			}
			cluster = append(cluster, n)
			visited[n] = struct{}{}
			if len(cluster) >= target {
				break
			}
			frontier = append(frontier, n)
		}
	}
	return cluster
}

func paintSurface(tm *tilemap.TileMap, tiles []tilemap.TilePos, s tilemap.SurfaceType) {
	for _, p := range tiles {
		tm.SetTile(p, tm.Tile(p).WithSurface(s))
	}
}

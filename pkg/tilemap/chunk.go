package tilemap

// Chunk is a 64×64 block of tiles plus a 16×16 grid of biome cells.
// Both arrays are indexed [x][y].
type Chunk struct {
	Tiles  [ChunkSize][ChunkSize]Tile
	Biomes [SubChunkCount][SubChunkCount]Biome
}

// Biome returns the biome of a sub-chunk.
func (c *Chunk) Biome(s SubChunkPos) Biome {
	return c.Biomes[s.X][s.Y]
}

// SetBiome sets the biome of a sub-chunk.
func (c *Chunk) SetBiome(s SubChunkPos, b Biome) {
	c.Biomes[s.X][s.Y] = b
}

// BiomeAt returns the biome covering the local tile (x, y).
func (c *Chunk) BiomeAt(x, y uint8) Biome {
	return c.Biomes[x/SubChunkSize][y/SubChunkSize]
}

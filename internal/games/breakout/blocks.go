package breakout

import (
	"slices"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/physics"
)

// Block is a destructible brick.
type Block struct {
	physics.Rect
	Color core.Color
}

// BlockField is the ordered collection of live blocks for one round.
// Order is row-major from the top-left block, which is also the order
// collisions are resolved in.
type BlockField struct {
	blocks []Block
	seeded int
}

// Seed replaces the field with a full set of rows. Block width is the canvas
// width divided evenly between perRow blocks; one row per color.
func (f *BlockField) Seed(canvasW, height, topOffset float64, perRow int, rows []core.Color) {
	width := canvasW / float64(perRow)
	f.blocks = make([]Block, 0, perRow*len(rows))
	for i, c := range rows {
		for j := 0; j < perRow; j++ {
			f.blocks = append(f.blocks, Block{
				Rect: physics.Rect{
					X: float64(j) * width,
					Y: float64(i)*height + topOffset,
					W: width,
					H: height,
				},
				Color: c,
			})
		}
	}
	f.seeded = len(f.blocks)
}

// HitFirst removes and returns the first block overlapping b.
// At most one block is removed per call.
func (f *BlockField) HitFirst(b physics.Bounds) (Block, bool) {
	i := slices.IndexFunc(f.blocks, func(blk Block) bool {
		return physics.Overlaps(b, blk)
	})
	if i < 0 {
		return Block{}, false
	}
	hit := f.blocks[i]
	f.blocks = slices.Delete(f.blocks, i, i+1)
	return hit, true
}

// Len returns the number of live blocks.
func (f *BlockField) Len() int {
	return len(f.blocks)
}

// Seeded returns the number of blocks the current round started with.
func (f *BlockField) Seeded() int {
	return f.seeded
}

// Each calls fn for every live block in order.
func (f *BlockField) Each(fn func(Block)) {
	for _, b := range f.blocks {
		fn(b)
	}
}

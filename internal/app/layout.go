package app

import (
	"fmt"

	"github.com/dshills/areaselect/internal/config"
	"github.com/dshills/areaselect/internal/surface"
)

// Demo element geometry, in cells.
const (
	itemWidth  = 9
	itemHeight = 1
	itemGapX   = 2
	itemGapY   = 1
)

// areaBounds returns the interactive region inside the configured border.
func areaBounds(c config.AreaConfig) surface.Rect {
	return surface.Rect{X: c.X + 1, Y: c.Y + 1, W: c.Width - 2, H: c.Height - 2}
}

// layoutElements arranges n elements in a grid that fits width columns.
// Rows continue below the visible area; the area scrolls to reach them.
func layoutElements(n, width int) []*surface.Element {
	cols := max(1, (width+itemGapX)/(itemWidth+itemGapX))
	els := make([]*surface.Element, 0, n)
	for i := range n {
		col, row := i%cols, i/cols
		id := fmt.Sprintf("item-%02d", i+1)
		els = append(els, surface.NewElement(id, id, surface.Rect{
			X: col * (itemWidth + itemGapX),
			Y: row * (itemHeight + itemGapY),
			W: itemWidth,
			H: itemHeight,
		}))
	}
	return els
}

package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// RGB is a 24-bit color. R=-1 means terminal default
type RGB struct {
	R, G, B int32
}

// RGBDefault marks the terminal's own foreground/background color
var RGBDefault = RGB{R: -1}

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << 0
	AttrDim     Attr = 1 << 1
	AttrReverse Attr = 1 << 2
	AttrBlink   Attr = 1 << 3
)

// Style represents cell styling for the draw buffer
type Style struct {
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// StyleDefault uses the terminal's own colors with no attributes
var StyleDefault = Style{Fg: RGBDefault, Bg: RGBDefault}

// Cell represents a single cell in the buffer
type Cell struct {
	Rune  rune
	Style Style
}

// Buffer is a 2D grid of styled cells that game states draw into.
// The terminal flushes dirty cells after each frame
type Buffer struct {
	width  int
	height int
	lines  [][]Cell
	dirty  map[Point]bool
}

// NewBuffer creates a new buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	lines := make([][]Cell, height)
	for y := 0; y < height; y++ {
		lines[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			lines[y][x] = Cell{Rune: ' ', Style: StyleDefault}
		}
	}

	return &Buffer{
		width:  width,
		height: height,
		lines:  lines,
		dirty:  make(map[Point]bool),
	}
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Resize resizes the buffer, preserving existing content where possible
func (b *Buffer) Resize(newWidth, newHeight int) {
	newLines := make([][]Cell, newHeight)
	for y := 0; y < newHeight; y++ {
		newLines[y] = make([]Cell, newWidth)
		for x := 0; x < newWidth; x++ {
			if y < b.height && x < b.width {
				newLines[y][x] = b.lines[y][x]
			} else {
				newLines[y][x] = Cell{Rune: ' ', Style: StyleDefault}
			}
		}
	}

	b.width = newWidth
	b.height = newHeight
	b.lines = newLines

	// Mark everything dirty so the next flush repaints in full
	b.dirty = make(map[Point]bool)
	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			b.dirty[Point{X: x, Y: y}] = true
		}
	}
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.lines[y][x], true
}

// SetCell sets the cell at the given position and marks it as dirty
func (b *Buffer) SetCell(x, y int, cell Cell) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}

	if b.lines[y][x] == cell {
		return true
	}
	b.lines[y][x] = cell
	b.dirty[Point{X: x, Y: y}] = true
	return true
}

// SetContent sets the content at the given position
func (b *Buffer) SetContent(x, y int, r rune, style Style) bool {
	return b.SetCell(x, y, Cell{Rune: r, Style: style})
}

// WriteString writes a string starting at the given position, clipped to width
func (b *Buffer) WriteString(x, y int, s string, style Style) {
	for _, r := range s {
		if !b.SetContent(x, y, r, style) {
			return
		}
		x++
	}
}

// Clear clears the entire buffer to the given style
func (b *Buffer) Clear(style Style) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.SetCell(x, y, Cell{Rune: ' ', Style: style})
		}
	}
}

// DirtyRegions returns all dirty positions
func (b *Buffer) DirtyRegions() []Point {
	regions := make([]Point, 0, len(b.dirty))
	for p := range b.dirty {
		regions = append(regions, p)
	}
	return regions
}

// ClearDirty clears all dirty flags
func (b *Buffer) ClearDirty() {
	b.dirty = make(map[Point]bool)
}

// GetLine returns a copy of all cells in a given row
func (b *Buffer) GetLine(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	line := make([]Cell, b.width)
	copy(line, b.lines[y])
	return line
}

package component

// Path is the waypoint list an enemy is following.
type Path struct {
	Cells  []Cell
	Cursor int

	RefreshInterval float64
	RefreshTimer    float64
}

func (p *Path) Empty() bool {
	return p == nil || len(p.Cells) == 0
}

func (p *Path) Clear() {
	p.Cells = p.Cells[:0]
	p.Cursor = 0
}

// Set replaces the waypoints and rewinds the cursor.
func (p *Path) Set(cells []Cell) {
	p.Cells = append(p.Cells[:0], cells...)
	p.Cursor = 0
}

// Next returns the waypoint under the cursor.
func (p *Path) Next() (Cell, bool) {
	if p.Empty() || p.Cursor >= len(p.Cells) {
		return Cell{}, false
	}
	return p.Cells[p.Cursor], true
}

// Advance moves to the following waypoint and reports whether one remains.
func (p *Path) Advance() bool {
	p.Cursor++
	return p.Cursor < len(p.Cells)
}

var PathComponent = NewComponent[Path]()

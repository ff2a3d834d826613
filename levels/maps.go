package levels

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/logger"
)

//go:embed *.txt
var LevelsFS embed.FS

// DefaultTile replaces blank cells.
const DefaultTile = "grass"

var ErrEmptyMap = errors.New("levels: empty map")

// TileMap is a parsed map file: one comma separated row of tile names per
// line. Rows may have different lengths; missing cells are empty strings.
type TileMap struct {
	Rows  int
	Cols  int
	Tiles [][]string
}

// BlockingTile reports whether actors may not walk on the named tile.
func BlockingTile(name string) bool {
	switch strings.ToLower(name) {
	case "water", "lava":
		return true
	default:
		return false
	}
}

func Parse(r io.Reader) (*TileMap, error) {
	m := &TileMap{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			m.Tiles = append(m.Tiles, nil)
			continue
		}
		parts := strings.Split(line, ",")
		row := make([]string, len(parts))
		for i, p := range parts {
			name := strings.TrimSpace(p)
			if name == "" {
				name = DefaultTile
			}
			row[i] = name
		}
		m.Cols = max(m.Cols, len(row))
		m.Tiles = append(m.Tiles, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: read map: %w", err)
	}
	m.Rows = len(m.Tiles)
	if m.Rows == 0 || m.Cols == 0 {
		return nil, ErrEmptyMap
	}
	return m, nil
}

// Tile returns the tile name at row, col or "" when the cell is absent.
func (m *TileMap) Tile(row, col int) string {
	if m == nil || row < 0 || row >= len(m.Tiles) || col < 0 || col >= len(m.Tiles[row]) {
		return ""
	}
	return m.Tiles[row][col]
}

// LoadMap reads levels/<name> from disk when present, else the embedded copy.
func LoadMap(name string) (*TileMap, error) {
	data, err := os.ReadFile(filepath.Join("levels", name))
	if err != nil {
		data, err = LevelsFS.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	return m, nil
}

// BuildGrid copies m into a cols by rows grid and locks its border. Cells the
// map does not cover are walkable; a nil map yields a border-only grid.
func BuildGrid(m *TileMap, cols, rows int, tileSize float64) *component.Grid {
	g := component.NewGrid(cols, rows, tileSize)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if BlockingTile(m.Tile(y, x)) {
				g.SetBlocked(component.Cell{X: x, Y: y}, true)
			}
		}
	}
	g.EnsureBorders()
	return g
}

// LoadGrid loads the named map and falls back to a border-only grid when it
// is missing or unreadable.
func LoadGrid(name string, cols, rows int, tileSize float64, log logrus.FieldLogger) (*component.Grid, *TileMap) {
	log = logger.Or(log)
	m, err := LoadMap(name)
	if err != nil {
		log.WithError(err).WithField("map", name).Warn("map unavailable, using border-only grid")
		return BuildGrid(nil, cols, rows, tileSize), nil
	}
	return BuildGrid(m, cols, rows, tileSize), m
}

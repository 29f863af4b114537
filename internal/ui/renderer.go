package ui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dragonslayer/internal/entity"
	"github.com/samdwyer/dragonslayer/internal/game"
)

// Tile backgrounds: walls and ground each have a lit variant inside the
// field of view and a dim variant for remembered-but-unseen tiles.
var (
	colorDarkWall    = tcell.NewRGBColor(0, 0, 100)
	colorLightWall   = tcell.NewRGBColor(130, 110, 50)
	colorDarkGround  = tcell.NewRGBColor(50, 50, 150)
	colorLightGround = tcell.NewRGBColor(200, 180, 50)
)

// Renderer draws the simulation state to the screen. It only ever reads
// the session's render-query surface.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the full frame: map, entities, status line and the most
// recent messages.
func (r *Renderer) Render(s *game.Session, messages []string) {
	r.screen.Clear()

	r.renderMap(s)
	r.renderEntities(s)
	r.renderStatus(s)
	r.renderMessages(s, messages)

	r.screen.Show()
}

// renderMap draws the tile grid. Unexplored tiles stay black; explored
// tiles render dim outside the field of view and lit inside it.
func (r *Renderer) renderMap(s *game.Session) {
	dungeon := s.Dungeon()
	fov := s.FOV()

	for y := 0; y < dungeon.Height; y++ {
		for x := 0; x < dungeon.Width; x++ {
			tile := dungeon.At(x, y)
			if !tile.Explored {
				continue
			}

			visible := fov.IsVisible(x, y)
			var bg tcell.Color
			switch {
			case visible && tile.BlocksSight:
				bg = colorLightWall
			case visible:
				bg = colorLightGround
			case tile.BlocksSight:
				bg = colorDarkWall
			default:
				bg = colorDarkGround
			}

			r.screen.SetContent(x, y, ' ', tcell.StyleDefault.Background(bg))
		}
	}
}

// renderEntities draws every currently visible entity, non-blocking ones
// first so corpses and items never cover an actor on the same tile.
func (r *Renderer) renderEntities(s *game.Session) {
	fov := s.FOV()

	visible := make([]*entity.Entity, 0, s.Registry().Len())
	for _, e := range s.Registry().All() {
		if fov.IsVisible(e.X, e.Y) {
			visible = append(visible, e)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return !visible[i].Blocks && visible[j].Blocks
	})

	for _, e := range visible {
		style := tcell.StyleDefault.Foreground(e.Color).Background(colorLightGround)
		r.screen.SetContent(e.X, e.Y, e.Glyph, style)
	}
}

// renderStatus draws the HP readout under the map.
func (r *Renderer) renderStatus(s *game.Session) {
	player := s.Player()
	if player.Fighter == nil {
		return
	}
	line := fmt.Sprintf("HP: %d/%d", player.Fighter.HP, player.Fighter.MaxHP)
	r.renderLine(line, s.Dungeon().Height+1)
}

// renderMessages draws the most recent message lines under the status bar.
func (r *Renderer) renderMessages(s *game.Session, messages []string) {
	base := s.Dungeon().Height + 2
	_, screenHeight := r.screen.Size()

	avail := screenHeight - base
	if avail <= 0 {
		return
	}
	if len(messages) > avail {
		messages = messages[len(messages)-avail:]
	}
	for i, msg := range messages {
		r.renderLine(msg, base+i)
	}
}

// renderLine draws one line of text at the given row.
func (r *Renderer) renderLine(line string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range line {
		r.screen.SetContent(i, y, ch, style)
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// explosionRunes is the 16-step animation sheet, expanding then fading.
var explosionRunes = []rune{
	'∙', '✶', '✷', '✸', '✹', '✺', '✺', '✹',
	'✸', '✷', '✶', '✦', '✧', '*', '·', '·',
}

// DrawSnapshot renders one simulation frame into the screen buffer.
// Row 0 carries the HUD; the world is mapped onto the remaining rows.
func DrawSnapshot(s *core.Screen, snap game.Snapshot) {
	s.Clear()

	drawHUD(s, snap)

	// Draw order: lasers underneath, then ships, explosions on top.
	for _, e := range snap.Entities {
		if e.Kind == game.KindPlayerLaser || e.Kind == game.KindEnemyLaser {
			drawEntity(s, snap, e)
		}
	}
	for _, e := range snap.Entities {
		if e.Kind == game.KindPlayer || e.Kind == game.KindEnemy {
			drawEntity(s, snap, e)
		}
	}
	for _, e := range snap.Entities {
		if e.Kind == game.KindExplosion {
			drawEntity(s, snap, e)
		}
	}

	switch snap.Flow {
	case game.StateMainMenu:
		drawMenu(s, snap)
	case game.StateGameOver:
		s.DrawTextCentered(s.Height()/2, "GAME OVER", core.ColorBrightRed)
	}
}

// drawHUD renders the score line at the top of the screen.
func drawHUD(s *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" Score: %d   High: %d   Enemies: %d/%d",
		snap.Score, snap.HighScore, snap.EnemyCount, snap.EnemyCap)
	if snap.Upgrade {
		hud += "   [LASER+]"
	}
	s.DrawText(0, 0, hud, core.ColorWhite)
}

// drawMenu renders the main menu overlay.
func drawMenu(s *core.Screen, snap game.Snapshot) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-3, "I N V A D E R S", core.ColorBrightGreen)
	if snap.HighScore > 0 {
		s.DrawTextCentered(mid-1, fmt.Sprintf("High score: %d", snap.HighScore), core.ColorYellow)
	}
	s.DrawTextCentered(mid+1, "Press ENTER to start", core.ColorWhite)
	s.DrawTextCentered(mid+3, "a/d or arrows to move, space to fire, q to quit", core.ColorGray)
}

// drawEntity rasterizes one entity's scaled box onto the grid.
func drawEntity(s *core.Screen, snap game.Snapshot, e game.EntitySnapshot) {
	halfW := e.W * e.ScaleX / 2
	halfH := e.H * e.ScaleY / 2

	x0, y0 := worldToCell(s, snap, e.X-halfW, e.Y+halfH)
	x1, y1 := worldToCell(s, snap, e.X+halfW, e.Y-halfH)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	r, c := entityGlyph(e)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.Set(x, y, r, c)
		}
	}
}

// entityGlyph picks the rune and color for an entity kind.
func entityGlyph(e game.EntitySnapshot) (rune, core.Color) {
	switch e.Kind {
	case game.KindPlayer:
		return '▲', core.ColorBrightGreen
	case game.KindPlayerLaser:
		if e.Upgraded {
			return '‖', core.ColorMagenta
		}
		return '|', core.ColorCyan
	case game.KindEnemy:
		return '▼', core.ColorBrightRed
	case game.KindEnemyLaser:
		return '!', core.ColorBrightYellow
	case game.KindExplosion:
		frame := e.Frame
		if frame < 0 {
			frame = 0
		}
		if frame >= len(explosionRunes) {
			frame = len(explosionRunes) - 1
		}
		return explosionRunes[frame], core.ColorOrange
	}
	return '?', core.ColorDefault
}

// worldToCell maps world coordinates (center origin, y-up) to grid cells.
// Row 0 is reserved for the HUD.
func worldToCell(s *core.Screen, snap game.Snapshot, wx, wy float64) (int, int) {
	viewH := s.Height() - 1
	if viewH < 1 {
		viewH = 1
	}

	x := int((wx + snap.WorldW/2) / snap.WorldW * float64(s.Width()))
	y := 1 + int((snap.WorldH/2-wy)/snap.WorldH*float64(viewH))

	if x < 0 {
		x = 0
	}
	if x >= s.Width() {
		x = s.Width() - 1
	}
	if y < 1 {
		y = 1
	}
	if y >= s.Height() {
		y = s.Height() - 1
	}
	return x, y
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

package main // import "github.com/tonobo/fingersnake-go"

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/tonobo/fingersnake-go/game"
)

var (
	styleBody  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHead  = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleFood  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlert = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// CellToSurface maps the centre of a terminal cell to surface coordinates.
func CellToSurface(col, row, cols, rows int) game.Point {
	return game.Point{
		X: (float64(col) + 0.5) * game.SurfaceWidth / float64(cols),
		Y: (float64(row) + 0.5) * game.SurfaceHeight / float64(rows),
	}
}

// SurfaceToCell maps a surface point to the terminal cell containing it.
func SurfaceToCell(p game.Point, cols, rows int) (int, int) {
	col := int(p.X * float64(cols) / game.SurfaceWidth)
	row := int(p.Y * float64(rows) / game.SurfaceHeight)
	return col, row
}

func setCell(c Canvas, x, y int, r rune, style tcell.Style) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.SetContent(x, y, r, nil, style)
}

// drawLine plots a Bresenham line between two cells.
func drawLine(c Canvas, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		setCell(c, x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func drawText(c Canvas, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		setCell(c, x+i, y, r, style)
	}
}

// Draw renders a game state onto the canvas.
func Draw(c Canvas, st game.State) {
	cols, rows := c.Size()
	if cols == 0 || rows == 0 {
		return
	}

	food := st.Food
	fx0, fy0 := SurfaceToCell(game.Point{X: food.Pos.X - float64(food.HalfWidth), Y: food.Pos.Y - float64(food.HalfHeight)}, cols, rows)
	fx1, fy1 := SurfaceToCell(game.Point{X: food.Pos.X + float64(food.HalfWidth), Y: food.Pos.Y + float64(food.HalfHeight)}, cols, rows)
	for y := fy0; y <= fy1; y++ {
		for x := fx0; x <= fx1; x++ {
			setCell(c, x, y, '●', styleFood)
		}
	}

	for i := 1; i < len(st.Points); i++ {
		x0, y0 := SurfaceToCell(st.Points[i-1], cols, rows)
		x1, y1 := SurfaceToCell(st.Points[i], cols, rows)
		drawLine(c, x0, y0, x1, y1, '█', styleBody)
	}
	if st.Head != nil {
		x, y := SurfaceToCell(*st.Head, cols, rows)
		setCell(c, x, y, '◉', styleHead)
	}

	drawText(c, 1, 0, fmt.Sprintf("Score:%d", st.Score), styleText)
	if st.GameOver {
		msg := fmt.Sprintf(" Game Over - Your Score:%d - r to restart ", st.Score)
		drawText(c, (cols-len([]rune(msg)))/2, rows/2, msg, styleAlert)
	}
}

// RunTUI plays in the terminal with the mouse pointer as the fingertip.
func RunTUI(a *Arena) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	redraw := func() {
		screen.Clear()
		Draw(screen, a.State())
		screen.Show()
	}
	redraw()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if ev.Key() == tcell.KeyRune {
				switch ev.Rune() {
				case 'q', 'Q':
					return nil
				case 'r', 'R':
					a.Restart()
				}
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			cols, rows := screen.Size()
			head := CellToSurface(x, y, cols, rows)
			if _, err := a.Frame(&head); err != nil {
				fmt.Fprintf(a.LogFile(), "tui frame: %v\n", err)
			}
		}
		redraw()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

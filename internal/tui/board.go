package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/fhcli/internal/game"
)

var (
	hitStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#538D4E")).Padding(0, 1)
	presentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#B59F3B")).Padding(0, 1)
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#3A3A3C")).Padding(0, 1)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565758")).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type tile struct {
	s     string
	width int
}

func markStyle(mark game.Mark) lipgloss.Style {
	switch mark {
	case game.Hit:
		return hitStyle
	case game.Present:
		return presentStyle
	default:
		return missStyle
	}
}

func guessTiles(g game.Guess) []tile {
	runes := []rune(g.Word)
	out := make([]tile, 0, len(runes))
	for i, r := range runes {
		mark := game.Miss
		if i < len(g.Marks) {
			mark = g.Marks[i]
		}
		letter := strings.ToUpper(string(r))
		out = append(out, tile{
			s:     markStyle(mark).Render(letter),
			width: runewidth.StringWidth(letter) + 2,
		})
	}
	return out
}

func emptyTiles(n int) []tile {
	out := make([]tile, n)
	for i := range out {
		out[i] = tile{s: emptyStyle.Render("_"), width: 3}
	}
	return out
}

func renderTiles(tiles []tile) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.s
	}
	return strings.Join(parts, " ")
}

func tilesWidth(tiles []tile) int {
	if len(tiles) == 0 {
		return 0
	}
	width := len(tiles) - 1
	for _, t := range tiles {
		width += t.width
	}
	return width
}

// renderBoard draws one row per guess slot: accepted guesses first, then empty rows.
func renderBoard(s *game.Session) string {
	rows := make([]string, 0, s.MaxGuesses())
	for _, g := range s.Guesses() {
		rows = append(rows, renderTiles(guessTiles(g)))
	}
	for len(rows) < s.MaxGuesses() {
		rows = append(rows, renderTiles(emptyTiles(s.WordLength())))
	}
	return strings.Join(rows, "\n")
}

// plainGuess renders feedback without colors: [x] is a hit, (x) is present
// and a bare letter is a miss.
func plainGuess(g game.Guess) string {
	runes := []rune(g.Word)
	cells := make([]string, 0, len(runes))
	for i, r := range runes {
		mark := game.Miss
		if i < len(g.Marks) {
			mark = g.Marks[i]
		}
		switch mark {
		case game.Hit:
			cells = append(cells, "["+string(r)+"]")
		case game.Present:
			cells = append(cells, "("+string(r)+")")
		default:
			cells = append(cells, " "+string(r)+" ")
		}
	}
	return strings.Join(cells, "")
}

func placeholder(n int) string {
	return strings.TrimSpace(strings.Repeat("_ ", n))
}

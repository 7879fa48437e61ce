package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card is the display payload for one bordered roster box: a centered
// title plus left-aligned detail lines.
type Card struct {
	Title string
	Lines []string
}

// Card layout geometry. Grid cards are clamped to a fixed height so two
// cards always align side by side.
const (
	// CardWidth is the outer width of every card, borders included.
	CardWidth = 50

	cardsPerRow     = 2
	gridCardHeight  = 7
	gridContentRows = 3
)

// gridGutter separates cards within a row.
const gridGutter = "    "

// composeCard builds a standalone card as styled lines. Height follows the
// content; lines are never truncated.
func composeCard(styles Styles, card Card, width int) []string {
	lines := make([]string, 0, len(card.Lines)+4)
	lines = append(lines, styles.Border.Render(cardTop(width)))
	lines = append(lines, cardTitleLine(styles, card.Title, width))
	lines = append(lines, cardBlankLine(width))
	for _, content := range card.Lines {
		lines = append(lines, cardContentLine(content, width))
	}
	lines = append(lines, styles.Border.Render(cardBottom(width)))
	return lines
}

// composeGridCard builds a card for the two-per-row grid. The result is
// always exactly gridCardHeight lines: missing content rows render blank,
// extra rows are dropped, and overlong content is truncated with an
// ellipsis so rows in adjacent cards stay aligned.
func composeGridCard(styles Styles, card Card, width int) []string {
	lines := make([]string, 0, gridCardHeight)
	lines = append(lines, cardTop(width))
	lines = append(lines, cardTitleLine(styles, card.Title, width))
	lines = append(lines, cardBlankLine(width))
	for i := 0; i < gridContentRows; i++ {
		if i < len(card.Lines) {
			lines = append(lines, gridContentLine(card.Lines[i], width))
		} else {
			lines = append(lines, cardBlankLine(width))
		}
	}
	lines = append(lines, cardBottom(width))
	return lines
}

func cardTop(width int) string {
	return "╭" + strings.Repeat("_", width-2) + "╮"
}

func cardBottom(width int) string {
	return "╰" + strings.Repeat("_", width-2) + "╯"
}

func cardBlankLine(width int) string {
	return "│" + strings.Repeat(" ", width-2) + "│"
}

// cardTitleLine centers the title between the side borders. When the
// leftover space is odd the extra cell goes to the right.
func cardTitleLine(styles Styles, title string, width int) string {
	interior := width - 2
	left := (interior - lipgloss.Width(title)) / 2
	if left < 0 {
		left = 0
	}
	right := interior - lipgloss.Width(title) - left
	if right < 0 {
		right = 0
	}
	return "│" + strings.Repeat(" ", left) +
		styles.CardTitle.Render(title) +
		strings.Repeat(" ", right) + "│"
}

// cardContentLine left-aligns content after a one-space inset and pads to
// the card width.
func cardContentLine(content string, width int) string {
	pad := width - 3 - lipgloss.Width(content)
	if pad < 0 {
		pad = 0
	}
	return "│ " + content + strings.Repeat(" ", pad) + "│"
}

// gridContentLine is cardContentLine with the grid truncation rule: content
// wider than the interior is cut and suffixed with an ellipsis.
func gridContentLine(content string, width int) string {
	if lipgloss.Width(content) > width-3 {
		content = ansi.Truncate(content, width-6, "") + "..."
	}
	return cardContentLine(content, width)
}

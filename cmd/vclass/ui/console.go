package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Fixed chrome text. The menu numbering is the contract for
// PromptMenuChoice: it accepts exactly the choices listed here.
const (
	headerBanner = "=============================================\n" +
		"                VCLASS 1.0                   \n" +
		"============================================="

	headerMenu = "1. Add Class     2. Add Student     3. View Classes\n" +
		"4. View Students 5. Quit"

	heroBanner  = "======================== WELCOME TO VCLASS ========================"
	heroTagline = "Create and manage your virtual classes and students with ease."

	footerRule   = "===================================================================="
	footerNotice = "                   © 2024 VClass Virtual Classroom                  "

	menuPrompt      = "Choose an option (1-5): "
	menuRetryPrompt = "Invalid input. Enter 1-5: "
	emptyLineNotice = "Input cannot be empty. Try again."
	pausePrompt     = "Press Enter to continue..."

	minMenuChoice = 1
	maxMenuChoice = 5
)

// Console is the interactive terminal surface. It owns the input scanner,
// so all reads during a session must go through it.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	term   *termenv.Output
	styles Styles
	clear  bool
	width  int
}

// NewConsole wires a console to the given streams. clearScreen enables the
// screen reset before each menu header; leave it off when out is not an
// interactive terminal.
func NewConsole(in io.Reader, out io.Writer, styles Styles, clearScreen bool) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		term:   termenv.NewOutput(out),
		styles: styles,
		clear:  clearScreen,
		width:  CardWidth,
	}
}

// RenderHero prints the one-time welcome banner.
func (c *Console) RenderHero() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Banner.Render(heroBanner))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Muted.Render(heroTagline))
	fmt.Fprintln(c.out)
}

// RenderHeader resets the screen and prints the application banner and the
// numbered menu.
func (c *Console) RenderHeader() {
	if c.clear {
		c.term.ClearScreen()
	}
	c.renderLines(c.styles.Banner, headerBanner)
	fmt.Fprintln(c.out)
	c.renderLines(c.styles.Menu, headerMenu)
	fmt.Fprintln(c.out)
}

// RenderFooter prints the closing banner.
func (c *Console) RenderFooter() {
	c.renderLines(c.styles.Muted, footerRule+"\n"+footerNotice+"\n"+footerRule)
	fmt.Fprintln(c.out)
}

// PromptMenuChoice reads lines until one parses as a listed menu number.
// The returned error is io.EOF when input ends first.
func (c *Console) PromptMenuChoice() (int, error) {
	fmt.Fprint(c.out, menuPrompt)
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && choice >= minMenuChoice && choice <= maxMenuChoice {
			return choice, nil
		}
		fmt.Fprint(c.out, menuRetryPrompt)
	}
}

// PromptNonEmptyLine shows label until the answer is non-blank, and returns
// it trimmed.
func (c *Console) PromptNonEmptyLine(label string) (string, error) {
	for {
		fmt.Fprint(c.out, label)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
		fmt.Fprintln(c.out, emptyLineNotice)
	}
}

// Pause blocks until the user presses Enter.
func (c *Console) Pause() error {
	fmt.Fprint(c.out, pausePrompt)
	_, err := c.readLine()
	return err
}

// ShowMessage prints a status line framed by blank lines.
func (c *Console) ShowMessage(msg string) {
	fmt.Fprintf(c.out, "\n%s\n\n", msg)
}

// ShowSection prints a section marker such as "--- Classes ---".
func (c *Console) ShowSection(title string) {
	fmt.Fprintf(c.out, "\n--- %s ---\n", title)
}

// ShowWarning prints a highlighted non-fatal problem report.
func (c *Console) ShowWarning(msg string) {
	fmt.Fprintf(c.out, "\n%s\n", c.styles.Warning.Render(msg))
}

// RenderCard draws a single standalone card sized to its content.
func (c *Console) RenderCard(card Card) {
	for _, line := range composeCard(c.styles, card, c.width) {
		fmt.Fprintln(c.out, line)
	}
}

// RenderCardGrid draws the cards two per row. Rows are joined line by line
// with a fixed gutter and each row ends with a blank line.
func (c *Console) RenderCardGrid(cards []Card) {
	for start := 0; start < len(cards); start += cardsPerRow {
		end := start + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		row := make([][]string, 0, cardsPerRow)
		for _, card := range cards[start:end] {
			row = append(row, composeGridCard(c.styles, card, c.width))
		}
		for lineNum := 0; lineNum < gridCardHeight; lineNum++ {
			segments := make([]string, 0, len(row))
			for _, cardLines := range row {
				segments = append(segments, c.styles.Border.Render(cardLines[lineNum]))
			}
			fmt.Fprintln(c.out, strings.Join(segments, gridGutter))
		}
		fmt.Fprintln(c.out)
	}
}

// renderLines styles and prints block one line at a time. Rendering a
// multi-line block in a single call pads every line to the widest one,
// which would change the fixed chrome text.
func (c *Console) renderLines(style lipgloss.Style, block string) {
	for _, line := range strings.Split(block, "\n") {
		fmt.Fprintln(c.out, style.Render(line))
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/muesli/termenv"

	"github.com/shaqnxtgen/tic-tac-toe-web/internal/entity"
)

const title = `
╔══════════════════════════════════╗
║           TIC TAC TOE            ║
║            Go Edition            ║
╚══════════════════════════════════╝`

func (that *Game) renderTitle() {
	that.println(that.out.String(title).Foreground(termenv.ANSIBrightCyan).Bold().String())
}

func (that *Game) renderBoard() {
	that.println("")
	that.println(that.bold("Current Board:"))
	that.println(that.yellow("   0   1   2"))

	for row := 0; row < 3; row++ {
		line := that.yellow(strconv.Itoa(row)) + "  "
		for col := 0; col < 3; col++ {
			line += that.cellSymbol(row, col)
			if col < 2 {
				line += " | "
			}
		}

		that.println(line)

		if row < 2 {
			that.println("  ---|---|---")
		}
	}
}

func (that *Game) cellSymbol(row, col int) string {
	switch that.board.Cell(row, col) {
	case entity.MarkX:
		return that.out.String("X").Foreground(termenv.ANSIBrightRed).Bold().String()
	case entity.MarkO:
		return that.out.String("O").Foreground(termenv.ANSIBrightBlue).Bold().String()
	default:
		return " "
	}
}

func (that *Game) renderResult(outcome entity.Outcome) {
	that.println("")

	switch outcome {
	case entity.OutcomeXWins:
		that.println(that.out.String("Player X wins!").Foreground(termenv.ANSIBrightGreen).Bold().String())
	case entity.OutcomeOWins:
		that.println(that.out.String("Player O wins!").Foreground(termenv.ANSIBrightGreen).Bold().String())
	case entity.OutcomeDraw:
		that.println(that.out.String("It's a draw!").Foreground(termenv.ANSIBrightYellow).Bold().String())
	}
}

// clearScreen is skipped for plain writers so captured output stays free of
// control sequences.
func (that *Game) clearScreen() {
	if that.out.Profile == termenv.Ascii {
		return
	}

	that.out.ClearScreen()
}

func (that *Game) print(s string) {
	_, _ = fmt.Fprint(that.out, s)
}

func (that *Game) println(s string) {
	_, _ = fmt.Fprintln(that.out, s)
}

func (that *Game) bold(s string) string {
	return that.out.String(s).Bold().String()
}

func (that *Game) red(s string) string {
	return that.out.String(s).Foreground(termenv.ANSIBrightRed).String()
}

func (that *Game) green(s string) string {
	return that.out.String(s).Foreground(termenv.ANSIBrightGreen).String()
}

func (that *Game) yellow(s string) string {
	return that.out.String(s).Foreground(termenv.ANSIBrightYellow).String()
}

func (that *Game) cyan(s string) string {
	return that.out.String(s).Foreground(termenv.ANSIBrightCyan).String()
}

func (that *Game) magenta(s string) string {
	return that.out.String(s).Foreground(termenv.ANSIBrightMagenta).String()
}

package cli

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/shaqnxtgen/tic-tac-toe-web/internal/entity"
)

var errMalformedMove = errors.New("malformed move")

type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(in)}
}

// next returns the trimmed next input line; ok is false once input ends.
func (that *lineReader) next() (string, bool) {
	if !that.scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(that.scanner.Text()), true
}

func isQuit(input string) bool {
	lowered := strings.ToLower(input)

	return lowered == "q" || lowered == "quit"
}

// parseMove accepts "row,col" and "row col".
func parseMove(input string) (entity.Move, error) {
	var fields []string
	if strings.Contains(input, ",") {
		fields = strings.Split(input, ",")
	} else {
		fields = strings.Fields(input)
	}

	if len(fields) != 2 {
		return entity.Move{}, errMalformedMove
	}

	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return entity.Move{}, errMalformedMove
	}

	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return entity.Move{}, errMalformedMove
	}

	return entity.Move{Row: row, Col: col}, nil
}

func (that *Game) promptMode() (entity.Mode, bool) {
	for {
		that.println("")
		that.println(that.bold("Select Game Mode:"))
		that.println(that.green("1.") + " Human vs Computer")
		that.println(that.green("2.") + " Human vs Human")

		that.print(that.cyan("\nEnter your choice (1-2): "))

		choice, ok := that.in.next()
		if !ok || isQuit(choice) {
			return "", false
		}

		switch choice {
		case "1":
			return entity.ModeAI, true
		case "2":
			return entity.ModeHuman, true
		default:
			that.println(that.red("Invalid choice! Please enter 1 or 2."))
		}
	}
}

func (that *Game) promptDifficulty() (entity.Difficulty, bool) {
	for {
		that.println("")
		that.println(that.bold("Select Difficulty:"))
		that.println(that.green("1.") + " Easy (Random moves)")
		that.println(that.yellow("2.") + " Medium (Basic strategy)")
		that.println(that.red("3.") + " Hard (Unbeatable)")

		that.print(that.cyan("\nEnter difficulty (1-3): "))

		choice, ok := that.in.next()
		if !ok || isQuit(choice) {
			return "", false
		}

		switch choice {
		case "1":
			return entity.DifficultyEasy, true
		case "2":
			return entity.DifficultyMedium, true
		case "3":
			return entity.DifficultyHard, true
		default:
			that.println(that.red("Invalid choice! Please enter 1, 2, or 3."))
		}
	}
}

// promptMove reads moves until one lands on a free cell. ok is false when
// the player quits or input ends.
func (that *Game) promptMove(label string) (entity.Move, bool) {
	for {
		that.print("\n" + that.bold(label+"'s turn") + " (format: row,col or row col): ")

		input, ok := that.in.next()
		if !ok || isQuit(input) {
			return entity.Move{}, false
		}

		move, err := parseMove(input)
		if err != nil {
			that.println(that.red("Invalid format! Please enter row,col (e.g., 1,2) or row col (e.g., 1 2)."))
			continue
		}

		if !that.board.IsValidMove(move.Row, move.Col) {
			that.println(that.red("Invalid move! Cell is already occupied or out of bounds."))
			continue
		}

		return move, true
	}
}

func (that *Game) promptPlayAgain() (bool, bool) {
	for {
		that.print(that.cyan("\nPlay again? (y/n): "))

		choice, ok := that.in.next()
		if !ok || isQuit(choice) {
			return false, false
		}

		switch strings.ToLower(choice) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		default:
			that.println(that.red("Please enter 'y' for yes or 'n' for no."))
		}
	}
}

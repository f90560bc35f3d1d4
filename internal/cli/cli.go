package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/shaqnxtgen/tic-tac-toe-web/internal/ai"
	"github.com/shaqnxtgen/tic-tac-toe-web/internal/entity"
)

// Game drives an interactive match in the terminal: menus, the board loop
// and the play-again prompt.
type Game struct {
	in  *lineReader
	out *termenv.Output

	board *entity.Board
	mode  entity.Mode
	bot   ai.Player
}

func NewGame(in io.Reader, out *termenv.Output) *Game {
	return &Game{
		in:    newLineReader(in),
		out:   out,
		board: entity.NewBoard(),
	}
}

// Run executes the menu and match loop until the player leaves.
func (that *Game) Run() {
	that.clearScreen()
	that.renderTitle()

	for {
		mode, ok := that.promptMode()
		if !ok {
			that.goodbye()
			return
		}
		that.mode = mode

		if that.mode == entity.ModeAI {
			difficulty, ok := that.promptDifficulty()
			if !ok {
				that.goodbye()
				return
			}

			that.bot = ai.NewPlayer(difficulty, entity.MarkO)
			that.println("")
			that.println(that.green("Game started! You are X, Computer is O."))
		} else {
			that.bot = nil
			that.println("")
			that.println(that.green("Game started! Player 1 is X, Player 2 is O."))
		}

		if quit := that.playRound(); quit {
			that.goodbye()
			return
		}

		again, ok := that.promptPlayAgain()
		if !ok || !again {
			that.goodbye()
			return
		}

		that.board.Reset()
		that.clearScreen()
		that.renderTitle()
	}
}

// playRound plays one match on the current board. It reports true when the
// player quit mid-game.
func (that *Game) playRound() bool {
	for {
		that.renderBoard()

		outcome := that.board.Outcome()
		if outcome.IsTerminal() {
			that.renderResult(outcome)
			return false
		}

		if that.mode == entity.ModeAI && that.board.CurrentPlayer == entity.MarkO {
			that.playBotMove()
			continue
		}

		move, ok := that.promptMove(that.playerLabel())
		if !ok {
			return true
		}

		that.board.ApplyMove(move.Row, move.Col)
	}
}

func (that *Game) playBotMove() {
	that.println("")
	that.println(that.magenta("Computer is thinking..."))

	move, ok := that.bot.ChooseMove(that.board)
	if !ok {
		return
	}

	that.board.ApplyMove(move.Row, move.Col)
	that.println(that.magenta(fmt.Sprintf("Computer plays: %d,%d", move.Row, move.Col)))
}

func (that *Game) playerLabel() string {
	if that.mode == entity.ModeAI {
		return "You (X)"
	}

	if that.board.CurrentPlayer == entity.MarkX {
		return "Player 1 (X)"
	}

	return "Player 2 (O)"
}

func (that *Game) goodbye() {
	that.println("")
	that.println(that.cyan("Thanks for playing! Goodbye!"))
}

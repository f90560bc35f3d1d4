package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/shaqnxtgen/tic-tac-toe-web/internal/cli"
)

const version = "1.0.0"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Tic Tac Toe v%s\n", version)
		return
	}

	game := cli.NewGame(os.Stdin, termenv.NewOutput(os.Stdout))
	game.Run()
}

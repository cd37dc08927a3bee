// Command wardrobectl inspects wardrobes from the terminal: it lists items,
// prints portfolio statistics, simulates purchases and asks the advisor.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "wardrobe")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

var commands = []subcommands.Command{
	&itemsCmd{},
	&statsCmd{},
	&simulateCmd{},
	&adviseCmd{},
}

package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BrewLog/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("BrewLog"), kong.Description("BrewLog is a personal coffee tasting journal."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}

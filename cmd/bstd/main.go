package main

import (
	"log"

	"github.com/alecthomas/kong"
)

type cli struct {
	Add     addCmd     `cmd:"" help:"Add two decimal numbers."`
	Picture pictureCmd `cmd:"" help:"Assign a value to a picture and render it."`
	Dump    dumpCmd    `cmd:"" help:"Dump the layout of a picture."`
	Stress  stressCmd  `cmd:"" help:"Compare random additions against float64 arithmetic."`
}

func main() {
	log.SetFlags(0)

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("bstd"),
		kong.Description("Inspect fixed point decimals and PICTURE fields."),
		kong.UsageOnError(),
	)

	ctx.FatalIfErrorf(ctx.Run())
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/Crossover-Compiler/Crossover-bstd-lib-sub000/picture"
)

type pictureInput struct {
	Mask  string `required:"" short:"m" help:"PICTURE clause, e.g. X(3)9(2)."`
	Bytes bool   `help:"Assign the value as raw bytes (right aligned) instead of as a string."`
	Value string `arg:"" optional:"" help:"Value to assign."`
}

func (in *pictureInput) build() (*picture.Picture, error) {
	p, err := picture.Parse(in.Mask)
	if err != nil {
		return nil, err
	}

	if in.Bytes {
		p.AssignBytes([]byte(in.Value))
	} else {
		p.AssignString(in.Value)
	}

	return p, nil
}

type pictureCmd struct {
	Input pictureInput `embed:""`
}

func (c *pictureCmd) Run() error {
	p, err := c.Input.build()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "mask   %s\n", string(maskBytes(p.Mask())))
	fmt.Fprintf(os.Stdout, "bytes  % x\n", p.Bytes())
	fmt.Fprintf(os.Stdout, "text   %q\n", p.Text())
	fmt.Fprintf(os.Stdout, "string %q\n", p.String())

	if err := p.Validate(); err != nil {
		log.Printf("warning: %v", err)
	}

	return nil
}

type dumpCmd struct {
	Input pictureInput `embed:""`
}

func (c *dumpCmd) Run() error {
	p, err := c.Input.build()
	if err != nil {
		return err
	}

	spew.Fdump(os.Stdout, p)

	return nil
}

func maskBytes(masks []picture.Mask) []byte {
	out := make([]byte, len(masks))
	for i, m := range masks {
		out[i] = byte(m)
	}

	return out
}

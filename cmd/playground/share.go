package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/voidshard/playground/internal/term"
	"github.com/voidshard/playground/pkg/widget"
)

const (
	docShare = `Share configuration & print the URL it can be loaded from`
)

type optsShare struct {
	optsGeneral
	optsTLS

	File   string `long:"file" short:"f" env:"CONFIG_FILE" default:"-" description:"File holding the configuration to share, - for stdin"`
	Origin string `long:"origin" env:"ORIGIN" description:"Origin share URLs are built on (defaults to --addr)"`
}

func (c *optsShare) Execute(args []string) error {
	log := c.logger()
	svc, err := newClient(&c.optsGeneral, &c.optsTLS, log)
	if err != nil {
		return err
	}

	text, err := readConfig(c.File)
	if err != nil {
		return err
	}

	origin := c.Origin
	if origin == "" {
		origin = strings.TrimSuffix(c.Addr, "/")
	}

	config := widget.NewElement(widget.IDConfiguration, false)
	config.SetValue(text)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	display := term.NewDisplay(os.Stdout)
	s := widget.NewSubmitter(svc, config, display.Message(), origin, &widget.Options{Logger: log})
	return s.Submit(ctx)
}

// readConfig returns the contents of path, or of stdin if path is "-".
func readConfig(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/voidshard/playground/internal/utils"
	"github.com/voidshard/playground/pkg/api/http/client"
)

type optsGeneral struct {
	Addr    string        `long:"addr" env:"ADDR" description:"Playground server address" default:"http://localhost:8080"`
	Timeout time.Duration `long:"timeout" env:"TIMEOUT" description:"Per request timeout" default:"2s"`
	Debug   bool          `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	NoColor bool          `long:"no-color" description:"Disable coloured output"`
}

type optsTLS struct {
	TLSCaCert string `long:"cacert" env:"CACERT" description:"Path to CA certificate trusted for the server"`
	TLSCert   string `long:"cert" env:"CERT" description:"Path to client TLS certificate"`
	TLSKey    string `long:"key" env:"KEY" description:"Path to client TLS key"`
}

// logger sets up terminal colouring & returns the logger every component shares.
func (g *optsGeneral) logger() *slog.Logger {
	if g.NoColor {
		color.NoColor = true
	}
	return utils.NewLogger(os.Stderr, g.Debug, color.NoColor)
}

// newClient builds the API client from the general & TLS options.
func newClient(g *optsGeneral, t *optsTLS, log *slog.Logger) (*client.Client, error) {
	tlsCfg, err := utils.TLSConfig(t.TLSCaCert, t.TLSCert, t.TLSKey)
	if err != nil {
		return nil, err
	}
	return client.New(g.Addr, &client.Options{
		Timeout:   g.Timeout,
		TLSConfig: tlsCfg,
		Logger:    log,
	})
}

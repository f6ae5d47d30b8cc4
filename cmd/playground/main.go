package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; whatever it sets is picked up by the env tags below.
	_ = godotenv.Load()

	parser := flags.NewParser(nil, flags.Default)
	parser.AddCommand("watch", docWatch, docWatch, &optsWatch{})
	parser.AddCommand("share", docShare, docShare, &optsShare{})

	if _, err := parser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case *flags.Error:
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			os.Exit(1)
		}
	}
}

package main

import (
	"os"
	"time"

	"github.com/johomo/advent-of-code-2023/internal/cli"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := cli.RunDay(4, os.Stdin, os.Stdout, os.Stderr, cli.Options{}); err != nil {
		log.Fatal().Err(err).Msg("Day 4 failed")
	}
}

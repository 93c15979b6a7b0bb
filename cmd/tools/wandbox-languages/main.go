package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	wandbox "github.com/Headline/wandbox-go"
	"github.com/Headline/wandbox-go/internal/config"
	"github.com/Headline/wandbox-go/internal/parser"
)

func main() {
	args := parser.ParseDefaultConfigurationArguments()

	cfg, err := config.Load(args.ConfigPath)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	endpoint := cfg.Endpoint

	if args.Endpoint != "" {
		endpoint = args.Endpoint
	}

	client := wandbox.NewClient(
		wandbox.WithBaseURL(endpoint),
		wandbox.WithTimeout(time.Duration(args.TimeoutSec)*time.Second),
	)

	catalog, err := client.LoadCatalog(context.Background(),
		wandbox.ExcludeCompilers(cfg.ExcludedCompilers...),
		wandbox.ExcludeLanguages(cfg.ExcludedLanguages...),
	)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load the compiler catalog")
	}

	// first compiler of a language is its default
	for _, language := range catalog.Languages() {
		fmt.Println(language.Name)

		for _, compiler := range language.Compilers {
			fmt.Printf("  %s (%s)\n", compiler.Name, compiler.Version)
		}
	}
}

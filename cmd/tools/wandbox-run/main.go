package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	wandbox "github.com/Headline/wandbox-go"
	"github.com/Headline/wandbox-go/internal/config"
	"github.com/Headline/wandbox-go/internal/files"
	"github.com/Headline/wandbox-go/internal/parser"
)

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

func main() {
	args := parser.ParseDefaultConfigurationArguments()

	if args.Target == "" || args.Source == "" {
		log.Fatal().Msg("both -target and -source are required")
	}

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

	ctx := context.Background()

	catalog, err := client.LoadCatalog(ctx,
		wandbox.ExcludeCompilers(cfg.ExcludedCompilers...),
		wandbox.ExcludeLanguages(cfg.ExcludedLanguages...),
	)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load the compiler catalog")
	}

	source, err := files.ReadSource(args.Source)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to read source file")
	}

	builder := wandbox.NewCompilationBuilder()
	builder.Target(args.Target)
	builder.Code(source)
	builder.Stdin(args.Stdin)
	builder.Save(args.Save)

	if buildErr := builder.Build(catalog); buildErr != nil {
		log.Fatal().Err(buildErr).Msg("failed to resolve target")
	}

	options := splitList(args.Options)

	if len(options) == 0 {
		options = cfg.OptionsFor(builder.Language())
	}

	builder.Options(options...)

	attachments, err := files.ReadAttachments(splitList(args.Files))

	if err != nil {
		log.Fatal().Err(err).Msg("failed to read attachments")
	}

	for _, attachment := range attachments {
		builder.AddFile(attachment.Name, attachment.Content)
	}

	log.Info().
		Str("compiler", builder.Compiler()).
		Str("language", builder.Language()).
		Msg("dispatching compilation")

	result, err := builder.Dispatch(ctx, client)

	if err != nil {
		log.Fatal().Err(err).Msg("compilation request failed")
	}

	if result.CompilerAll != "" {
		fmt.Fprintln(os.Stderr, result.CompilerAll)
	}

	if result.ProgramStdout != "" {
		fmt.Print(result.ProgramStdout)
	}

	if result.ProgramStderr != "" {
		fmt.Fprint(os.Stderr, result.ProgramStderr)
	}

	if result.URL != "" {
		log.Info().Str("url", result.URL).Msg("compilation saved")
	}

	if !result.Success() {
		log.Warn().
			Str("status", result.Status).
			Str("signal", result.Signal).
			Msg("program did not exit cleanly")

		os.Exit(1)
	}
}

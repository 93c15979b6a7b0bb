package parser

import (
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Arguments struct {
	Target  string
	Source  string
	Stdin   string
	Options string
	Files   string
	Save    bool

	Endpoint   string
	ConfigPath string
	TimeoutSec int
	Verbose    bool
}

// ParseDefaultConfigurationArguments reads the command line flags of the
// wandbox tools. Through namsral/flag every flag can also arrive as an
// environment variable, e.g. TARGET=c++.
func ParseDefaultConfigurationArguments() Arguments {
	args := Arguments{}

	flag.StringVar(&args.Target, "target", "", "compiler name or language to compile with")
	flag.StringVar(&args.Source, "source", "", "path of the source file to submit")
	flag.StringVar(&args.Stdin, "stdin", "", "standard input handed to the program")
	flag.StringVar(&args.Options, "options", "", "comma separated compiler options")
	flag.StringVar(&args.Files, "files", "", "comma separated paths of additional files to attach")
	flag.BoolVar(&args.Save, "save", false, "ask wandbox for a permalink")

	flag.StringVar(&args.Endpoint, "endpoint", "", "wandbox instance to talk to, default https://wandbox.org")
	flag.StringVar(&args.ConfigPath, "config", "", "path of an optional yaml config file")
	flag.IntVar(&args.TimeoutSec, "timeout", 30, "request timeout in seconds")
	flag.BoolVar(&args.Verbose, "verbose", false, "enable debug logging")

	flag.Parse()

	// the level must be in place before anything logs, including the
	// argument dump below
	applyLogLevel(args.Verbose)

	log.Debug().Msgf("%+v parsed arguments", args)

	return args
}

func applyLogLevel(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

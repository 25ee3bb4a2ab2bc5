package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dcnet-server/dcnet/internal/config"
	"github.com/dcnet-server/dcnet/internal/dc"
	"github.com/dcnet-server/dcnet/internal/logging"
)

const versionString = "0.1.0"

const defaultConfigFile = "daemon.toml"

// cliArgs is the parsed command line.
type cliArgs struct {
	configFile  string
	showHelp    bool
	showVersion bool
}

// parseArgs accepts the help/version flags and at most one positional
// argument naming the config file.
func parseArgs(args []string) (cliArgs, error) {
	parsed := cliArgs{configFile: defaultConfigFile}
	sawConfig := false
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			parsed.showHelp = true
		case "-v", "--version":
			parsed.showVersion = true
		default:
			if strings.HasPrefix(arg, "-") {
				return cliArgs{}, fmt.Errorf("%s: invalid argument", arg)
			}
			if sawConfig {
				return cliArgs{}, fmt.Errorf("%s: unexpected extra argument", arg)
			}
			parsed.configFile = arg
			sawConfig = true
		}
	}
	return parsed, nil
}

func main() {
	parsed, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dcnetd: %v\n\n", err)
		printHelp(defaultConfigFile)
		os.Exit(1)
	}
	if parsed.showHelp {
		printHelp(defaultConfigFile)
		return
	}
	if parsed.showVersion {
		fmt.Printf("dcnetd, version %s\n", versionString)
		return
	}

	logging.ConfigureRuntime("dcnetd")

	cfg, err := config.LoadDaemonConfig(parsed.configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dcnetd: %v\n", err)
		os.Exit(1)
	}

	opts := dc.FileOptions{
		VirtualInheritance:    cfg.VirtualInheritance,
		SortInheritanceByFile: cfg.SortInheritanceByFile,
	}
	for _, path := range cfg.SchemaFiles {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dcnetd: read schema %s: %v\n", path, err)
			os.Exit(1)
		}
		file, err := dc.ParseFile(string(src), opts)
		if err != nil {
			// schema-compile failures are fatal to startup
			fmt.Fprintf(os.Stderr, "dcnetd: compile schema %s: %v\n", path, err)
			os.Exit(1)
		}
		log.Info().
			Str("schema", path).
			Int("classes", file.NumClasses()).
			Int("fields", file.NumFields()).
			Uint32("hash", file.Hash()).
			Msg("schema compiled")
	}

	log.Info().Str("name", cfg.Name).Msg("schemas ready; handing off to service layer")
}

func printHelp(configPath string) {
	fmt.Printf(`Usage:    dcnetd [options] ... [CONFIG_FILE]

dcnetd - distributed object network engine daemon.
Looks for a configuration file (.toml) in the current
working directory as %q.

  -h, --help      Print this help page.
  -v, --version   Print version info.
`, configPath)
}

// dchash compiles DC schema files and prints their 32-bit fingerprints, for
// checking that two deployments agree on a schema before rolling it out.
package main

import (
	"fmt"
	"os"

	"github.com/dcnet-server/dcnet/internal/dc"
)

func main() {
	var overridesPath string
	var schemaPaths []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			printHelp()
			return
		case "-c":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "dchash: -c requires a file path")
				os.Exit(1)
			}
			i++
			overridesPath = args[i]
		default:
			schemaPaths = append(schemaPaths, args[i])
		}
	}
	if len(schemaPaths) == 0 {
		printHelp()
		os.Exit(1)
	}

	opts := dc.FileOptions{}
	if overridesPath != "" {
		loaded, err := loadOverrides(overridesPath, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dchash: %v\n", err)
			os.Exit(1)
		}
		opts = loaded
	}

	for _, path := range schemaPaths {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dchash: %v\n", err)
			os.Exit(1)
		}
		file, err := dc.ParseFile(string(src), opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dchash: compile %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("%s\t0x%08x\n", path, file.Hash())
	}
}

func printHelp() {
	fmt.Print(`Usage:    dchash [-c OVERRIDES_FILE] SCHEMA_FILE ...

Compiles each DC schema file and prints its 32-bit fingerprint.
The overrides file (.toml) may set virtual_inheritance and
sort_inheritance_by_file; both must match the daemon's settings
for fingerprints to be comparable.
`)
}

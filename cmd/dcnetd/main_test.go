package main

import "testing"

func TestParseArgsDefaults(t *testing.T) {
	parsed, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.configFile != defaultConfigFile || parsed.showHelp || parsed.showVersion {
		t.Fatalf("unexpected defaults: %+v", parsed)
	}
}

func TestParseArgsConfigPath(t *testing.T) {
	parsed, err := parseArgs([]string{"cluster.toml"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.configFile != "cluster.toml" {
		t.Fatalf("config file: got=%q", parsed.configFile)
	}
}

func TestParseArgsFlags(t *testing.T) {
	parsed, err := parseArgs([]string{"-h"})
	if err != nil || !parsed.showHelp {
		t.Fatalf("help flag: parsed=%+v err=%v", parsed, err)
	}
	parsed, err = parseArgs([]string{"--version"})
	if err != nil || !parsed.showVersion {
		t.Fatalf("version flag: parsed=%+v err=%v", parsed, err)
	}
}

func TestParseArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := parseArgs([]string{"--bogus"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestParseArgsRejectsExtraPositional(t *testing.T) {
	if _, err := parseArgs([]string{"a.toml", "b.toml"}); err == nil {
		t.Fatalf("expected error for extra positional argument")
	}
}

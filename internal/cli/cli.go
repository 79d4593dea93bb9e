package cli

import (
	"os"
	"poe-recomb-sim/internal/helpers"
)

type Flags struct {
	ReportBase bool
	JSON       bool
	File       string
	Scenario   string
}

func constructFlags() Flags {
	return Flags{
		ReportBase: false,
		JSON:       false,
		File:       "",
		Scenario:   "",
	}
}

func GetFlags() Flags {
	return ParseFlags(os.Args[1:])
}

func ParseFlags(args []string) Flags {
	flags := constructFlags()
	if helpers.ContainsStr(args, "--report-base") {
		flags.ReportBase = true
	}
	if helpers.ContainsStr(args, "--json") {
		flags.JSON = true
	}
	if file, ok := FlagValue(args, "--file"); ok {
		flags.File = file
	}
	if scenario, ok := FlagValue(args, "--scenario"); ok {
		flags.Scenario = scenario
	}

	return flags
}

// FlagValue returns the argument following flag.
func FlagValue(args []string, flag string) (string, bool) {
	i := helpers.IndexOfStr(args, flag)
	if i == -1 || i+1 >= len(args) {
		return "", false
	}
	return args[i+1], true
}

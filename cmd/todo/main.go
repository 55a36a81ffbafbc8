package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todofilter/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	group := flag.Bool("group", false, "show hidden items in their own section")
	configPath := flag.String("config", "", "config file path")
	theme := flag.String("theme", "", "classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable colors")
	forceColor := flag.Bool("color", false, "force colors")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group:      *group,
		ConfigPath: *configPath,
		Theme:      *theme,
		NoColor:    *noColor,
		ForceColor: *forceColor,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

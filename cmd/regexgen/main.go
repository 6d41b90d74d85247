// Command regexgen compiles a pattern and either checks it against input
// lines, opens an interactive REPL for trying patterns, or renders a
// compiled pattern's transition table as Graphviz DOT source.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

type options struct {
	pattern string
	input   goflags.StringSlice
	graph   bool
	repl    bool
	verbose bool
	silent  bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Compile a byte-level regular expression and check it against input.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.pattern, "pattern", "p", "", "pattern to compile"),
		flagSet.StringSliceVarP(&opts.input, "line", "l", nil, "line(s) to match against the pattern (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("mode", "Mode",
		flagSet.BoolVarP(&opts.repl, "interactive", "i", false, "open an interactive REPL instead of matching"),
		flagSet.BoolVarP(&opts.graph, "graph", "g", false, "print the compiled transition table as DOT instead of matching"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}

func main() {
	opts := parseFlags()

	if opts.repl {
		runREPL()
		return
	}

	if opts.pattern == "" {
		gologger.Fatal().Msgf("a pattern is required; pass -pattern or use -interactive\n")
	}

	if opts.graph {
		runGraph(opts.pattern)
		return
	}

	runMatch(opts)
}

func runMatch(opts *options) {
	re, err := compilePattern(opts.pattern)
	if err != nil {
		gologger.Fatal().Msgf("failed to compile pattern %q: %v\n", opts.pattern, err)
	}

	lines := opts.input
	if len(lines) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
	}

	for _, line := range lines {
		if re.MatchString(line) {
			fmt.Println(line)
		} else if opts.verbose {
			gologger.Verbose().Msgf("no match: %q\n", line)
		}
	}
}

func runGraph(pattern string) {
	re, err := compilePattern(pattern)
	if err != nil {
		gologger.Fatal().Msgf("failed to compile pattern %q: %v\n", pattern, err)
	}
	fmt.Println(renderDOT(re))
}

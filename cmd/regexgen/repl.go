package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lmorg/readline/v4"
	"golang.org/x/term"

	regexgen "github.com/sbwtw/regex-gen"
)

// repl holds the one pattern currently loaded, if any, plus the output
// stream it prints results to. Input is read from os.Stdin.
type repl struct {
	current *regexgen.Regex
	output  *os.File
}

func runREPL() {
	r := &repl{output: os.Stdout}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		r.runInteractive()
		return
	}
	r.runPiped()
}

func (r *repl) runInteractive() {
	rl := readline.NewInstance()
	rl.SetPrompt("regexgen> ")

	fmt.Fprintln(r.output, `Enter ":pattern <expr>" to compile a pattern, then any other line is matched against it.`)
	fmt.Fprintln(r.output, `":graph" prints the current pattern's compiled table as DOT. ":quit" exits.`)

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		if r.handleLine(strings.TrimSpace(line)) {
			return
		}
	}
}

func (r *repl) runPiped() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if r.handleLine(strings.TrimSpace(scanner.Text())) {
			return
		}
	}
}

// handleLine processes one line of REPL input and reports whether the REPL
// should exit.
func (r *repl) handleLine(line string) bool {
	switch {
	case line == "":
		return false
	case line == ":quit" || line == ":exit":
		return true
	case line == ":graph":
		r.printGraph()
		return false
	case strings.HasPrefix(line, ":pattern "):
		r.compile(strings.TrimPrefix(line, ":pattern "))
		return false
	default:
		r.match(line)
		return false
	}
}

func (r *repl) compile(pattern string) {
	re, err := regexgen.Compile(pattern)
	if err != nil {
		fmt.Fprintf(r.output, "error: %v\n", err)
		return
	}
	r.current = re
	fmt.Fprintf(r.output, "compiled %q (%d states)\n", pattern, re.NumStates())
}

func (r *repl) match(line string) {
	if r.current == nil {
		fmt.Fprintln(r.output, "no pattern loaded; use :pattern <expr> first")
		return
	}
	if r.current.MatchString(line) {
		fmt.Fprintf(r.output, "match: %q\n", line)
	} else {
		fmt.Fprintf(r.output, "no match: %q\n", line)
	}
}

func (r *repl) printGraph() {
	if r.current == nil {
		fmt.Fprintln(r.output, "no pattern loaded; use :pattern <expr> first")
		return
	}
	fmt.Fprintln(r.output, r.current.WriteDOT())
}

package main

import regexgen "github.com/sbwtw/regex-gen"

func compilePattern(pattern string) (*regexgen.Regex, error) {
	return regexgen.Compile(pattern)
}

func renderDOT(re *regexgen.Regex) string {
	return re.WriteDOT()
}

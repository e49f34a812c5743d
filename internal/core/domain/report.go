package domain

import "strings"

// Report is the ordered sequence of candidate paths confirmed to trigger a
// rebuild of one target. The order equals probing order, which equals the
// operator's input order. Reports are produced fresh per target and never
// merged.
type Report struct {
	Target       string
	Dependencies []string
}

// String renders the operator-facing report line:
//
//	<target>: <dep1> <dep2> ... <depN>
func (r Report) String() string {
	var b strings.Builder
	b.WriteString(r.Target)
	b.WriteString(":")
	for _, dep := range r.Dependencies {
		b.WriteString(" ")
		b.WriteString(dep)
	}
	return b.String()
}

// PhonyLine renders the aggregate phony-target summary:
//
//	.PHONY: <t1> <t2> ...
func PhonyLine(targets []string) string {
	var b strings.Builder
	b.WriteString(".PHONY:")
	for _, t := range targets {
		b.WriteString(" ")
		b.WriteString(t)
	}
	return b.String()
}

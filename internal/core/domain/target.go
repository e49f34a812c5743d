// Package domain contains the core domain models for the dependency probe.
package domain

// Target is a named build artifact under test.
//
// The phony flag starts unknown, is set at most once by the prober when the
// build action turns out not to produce a file of the target's name, and is
// never reset.
type Target struct {
	Name string

	phony bool
}

// NewTarget creates a Target for the given build-command argument.
func NewTarget(name string) *Target {
	return &Target{Name: name}
}

// MarkPhony records that the target's build action does not produce a
// correspondingly named file. Once set the classification sticks.
func (t *Target) MarkPhony() {
	t.phony = true
}

// Phony reports whether the target has been classified as phony.
func (t *Target) Phony() bool {
	return t.phony
}

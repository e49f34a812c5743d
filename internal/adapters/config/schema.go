package config

// Sessionfile represents the structure of the optional scrutineer.yaml
// session file. Every field can also be supplied (and is overridden) on the
// command line.
type Sessionfile struct {
	// Build is the build command string; the target name is appended when
	// building a specific target.
	Build string `yaml:"build"`
	// Clean is the clean command string.
	Clean string `yaml:"clean"`
	// Targets are the artifacts to assess.
	Targets []string `yaml:"targets"`
	// Deps are the candidate dependency paths.
	Deps []string `yaml:"deps"`
	// Chdir is a working directory applied before any action runs.
	Chdir string `yaml:"chdir"`
	// Phony enables the trailing .PHONY summary line.
	Phony bool `yaml:"phony"`
	// VerifyContent enables the rebuild content-fingerprint advisory.
	VerifyContent bool `yaml:"verify_content"`
	// MtimeResolution is a duration string, e.g. "10ms".
	MtimeResolution string `yaml:"mtime_resolution"`
}

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/Smattr/scrutineer/internal/app"
	"github.com/stretchr/testify/assert"
)

// buildScript only refreshes the target when a.c is newer than it. find
// -newer compares nanosecond mtimes, unlike the shell's -nt on some systems.
const buildScript = `#!/bin/sh
out="$1"
if [ ! -e "$out" ] || [ -n "$(find a.c -newer "$out" -print -quit)" ]; then
    cp a.c "$out"
fi
`

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name           string
		config         string
		files          map[string]string
		args           []string
		expectedExit   int
		expectedReport string
	}{
		{
			name: "Success with valid config",
			config: `build: sh build.sh
clean: rm -f out.bin
targets:
  - out.bin
deps:
  - a.c
  - unused.h
mtime_resolution: 25ms
`,
			files: map[string]string{
				"a.c":      "int a;\n",
				"unused.h": "#pragma once\n",
				"build.sh": buildScript,
			},
			args:           []string{"scrutineer", "probe"},
			expectedExit:   0,
			expectedReport: "out.bin: a.c\n",
		},
		{
			name:         "Malformed config",
			config:       "targets: [unclosed\n",
			args:         []string{"scrutineer", "probe"},
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			config:       "",
			args:         []string{"scrutineer", "bogus"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			if tt.config != "" {
				err := os.WriteFile(tmpDir+"/scrutineer.yaml", []byte(tt.config), 0o600)
				if err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			}
			for name, content := range tt.files {
				err := os.WriteFile(tmpDir+"/"+name, []byte(content), 0o700) //nolint:gosec // test scripts must be executable
				if err != nil {
					t.Fatalf("failed to write %s: %v", name, err)
				}
			}

			// Change to tmpDir for relative path resolution
			originalWd, _ := os.Getwd()
			err := os.Chdir(tmpDir)
			if err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			// Set args
			os.Args = tt.args

			// Run and capture exit code plus the report lines
			var report bytes.Buffer
			exitCode := run(func(a *app.App) {
				a.SetOutput(&report)
			})
			assert.Equal(t, tt.expectedExit, exitCode)
			if tt.expectedReport != "" {
				assert.Equal(t, tt.expectedReport, report.String())
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	os.Args = []string{"scrutineer", "version"}
	exitCode := run()
	assert.Equal(t, 0, exitCode)
}

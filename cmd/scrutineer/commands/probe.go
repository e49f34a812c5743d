package commands

import (
	"github.com/Smattr/scrutineer/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe [targets...]",
		Short: "Probe targets against a list of candidate dependency files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, _ := cmd.Flags().GetStringArray("dep")
			buildCmd, _ := cmd.Flags().GetString("build")
			cleanCmd, _ := cmd.Flags().GetString("clean")
			chdir, _ := cmd.Flags().GetString("chdir")
			phony, _ := cmd.Flags().GetBool("phony")
			verify, _ := cmd.Flags().GetBool("verify-content")
			resolution, _ := cmd.Flags().GetDuration("mtime-resolution")

			return c.app.Run(cmd.Context(), domain.Overrides{
				Targets:         args,
				Candidates:      deps,
				Build:           buildCmd,
				Clean:           cleanCmd,
				WorkingDir:      chdir,
				ReportPhony:     phony,
				VerifyContent:   verify,
				MtimeResolution: resolution,
			})
		},
	}
	cmd.Flags().StringArrayP("dep", "d", nil, "Candidate dependency file (repeatable)")
	cmd.Flags().StringP("build", "b", "", `Build command; the target name is appended (default "make")`)
	cmd.Flags().StringP("clean", "c", "", `Clean command (default "make clean")`)
	cmd.Flags().StringP("chdir", "C", "", "Change to this directory before any action runs")
	cmd.Flags().BoolP("phony", "p", false, "Report phony targets in a trailing .PHONY line")
	cmd.Flags().Bool("verify-content", false, "Log rebuilds that produced byte-identical output")
	cmd.Flags().Duration("mtime-resolution", 0, `Filesystem mtime granularity (default "1s")`)
	return cmd
}

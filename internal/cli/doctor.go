package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/skit/internal/runner"
	"github.com/Paintersrp/skit/internal/sdk"
)

func newDoctorCommand(appCtx *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Report which runtimes and SDK the launcher would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg := appCtx.cfg

			report := func(name, bin string) {
				if path, ok := runner.FindExecutable(bin); ok {
					fmt.Fprintf(out, "%-8s %s\n", name, path)
					return
				}
				if path, err := exec.LookPath(bin); err == nil {
					fmt.Fprintf(out, "%-8s %s (via PATH)\n", name, path)
					return
				}
				fmt.Fprintf(out, "%-8s not found (looked for %q)\n", name, bin)
			}
			report("bun", cfg.Runtimes.Bun)
			report("node", cfg.Runtimes.Node)

			if path, err := sdk.Path(); err == nil {
				fmt.Fprintf(out, "%-8s %s\n", "sdk", path)
			} else {
				fmt.Fprintf(out, "%-8s unavailable: %v\n", "sdk", err)
			}

			if cfg.ScriptsDir != "" {
				fmt.Fprintf(out, "%-8s %s\n", "scripts", cfg.ScriptsDir)
			}
			return nil
		},
	}
}

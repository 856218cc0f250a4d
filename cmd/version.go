package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/khanhnv2901/arch-health/cmd.Version=..." at release.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the arch-health version",
	Long:  "Print the arch-health version. With --verbose, also show build details and where each system tool the checks shell out to resolves in PATH.",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "arch-health %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)

		verbose, _ := cmd.Flags().GetBool("verbose")
		if !verbose {
			return
		}

		fmt.Fprintf(out, "  commit:  %s\n  built:   %s\n  go:      %s\n", GitCommit, BuildDate, runtime.Version())
		fmt.Fprintln(out, "tools:")
		for _, tool := range []string{cliConfig.Library.LddPath, "pacman", "arch-audit"} {
			path, err := toolLookPath(tool)
			if err != nil {
				path = colorDim("not in PATH")
			}
			fmt.Fprintf(out, "  %-11s %s\n", tool, path)
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "also show build details and resolved tool paths")
}

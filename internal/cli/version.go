package cli

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	appver "easel/internal/version"
)

var versionBuild bool

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionBuild, "build", false, "include toolchain and VCS details")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print easel version",
	Run: func(cmd *cobra.Command, args []string) {
		if !versionBuild {
			// keep output simple for scripting
			fmt.Println(appver.AppVersion)
			return
		}
		fmt.Printf("easel %s\n", appver.AppVersion)
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		fmt.Printf("  go        %s\n", bi.GoVersion)
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision", "vcs.time", "vcs.modified":
				fmt.Printf("  %-9s %s\n", strings.TrimPrefix(s.Key, "vcs."), s.Value)
			}
		}
	},
}

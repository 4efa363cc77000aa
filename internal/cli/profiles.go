package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-filelog/logger"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the level profiles and the types they admit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, p := range logger.Profiles() {
				types, _ := logger.ProfileTypes(p)
				names := make([]string, len(types))
				for i, t := range types {
					names[i] = string(t)
				}
				fmt.Fprintf(w, "%-11s %s\n", p, strings.Join(names, " "))
			}
		},
	}
}

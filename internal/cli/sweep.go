package cli

import (
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-filelog/retention"
)

func newSweepCmd(o *options) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete log files older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, fc, err := o.newLogger(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") && fc.RetentionDays != nil {
				days = *fc.RetentionDays
			}
			retention.New(l.FilePath(), l).Sweep(days)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "retention in days, 0 disables the sweep")

	return cmd
}

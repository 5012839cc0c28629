package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every recorded answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete recorded answers without --yes")
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ResetAttempts(cmd.Context())
		if err != nil {
			return err
		}
		rt.logger.Info("reset recorded answers", zap.Int64("deleted", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d recorded answers.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}

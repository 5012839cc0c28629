package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive drill",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay opens the store and launches the TUI. Without a usable store the
// drill still runs, unrecorded.
func runPlay(cmd *cobra.Command) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	opts := app.Options{Session: sess, Logger: rt.logger, Splash: !noSplash}
	st, err := openStore()
	if err != nil {
		rt.logger.Warn("answers will not be recorded", zap.Error(err))
	} else {
		defer st.Close()
		sess.Recorder = st.AttemptRepo()
		opts.Attempts = st.AttemptRepo()
	}

	return app.Run(cmd.Context(), opts)
}

func init() {
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/trainer"
)

// constraintsFromFlags parses --with and --without.
func constraintsFromFlags(cmd *cobra.Command) (trainer.Constraints, error) {
	with, _ := cmd.Flags().GetStringSlice("with")
	without, _ := cmd.Flags().GetStringSlice("without")
	return trainer.ParseConstraints(with, without)
}

// newSession builds a practice session from the loaded configuration and
// the constraint flags.
func newSession(cmd *cobra.Command) (*trainer.Session, error) {
	c, err := constraintsFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	sess := trainer.NewSession()
	sess.Settings = rt.cfg.Settings()
	sess.Constraints = c
	sess.Logger = rt.logger
	sess.Generator = newGenerator()
	return sess, nil
}

func newGenerator() *problemgen.Generator {
	return problemgen.New(rt.cfg.Generator(), problemgen.WithLogger(rt.logger))
}

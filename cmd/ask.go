package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/trainer"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Practice in the console",
	Long: `Ask random questions in the console until input ends, or --count
questions have been answered. Each answer is graded and recorded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		noRecord, _ := cmd.Flags().GetBool("no-record")

		sess, err := newSession(cmd)
		if err != nil {
			return err
		}
		if !noRecord {
			st, err := openStore()
			if err != nil {
				rt.logger.Warn("answers will not be recorded", zap.Error(err))
			} else {
				defer st.Close()
				sess.Recorder = st.AttemptRepo()
			}
		}

		tr := trainer.NewWithSession(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
		if err := tr.DescribeSkills(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())

		_, err = tr.Run(cmd.Context(), count)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

var checkCmd = &cobra.Command{
	Use:   "check A OP B ANSWER",
	Short: "Grade one answer to a given question",
	Example: `  mathdrill check -- 12 - 5 -7
  mathdrill check 9 + 3 2`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		first, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("first operand: %w", err)
		}
		second, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("second operand: %w", err)
		}
		given, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("answer: %w", err)
		}

		sess := trainer.NewSession()
		sess.Logger = rt.logger
		tr := trainer.NewWithSession(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
		_, err = tr.Check(cmd.Context(), first, args[1], second, problem.Answer{Answer: given})
		return err
	},
}

func init() {
	askCmd.Flags().Int("count", 0, "Number of questions to ask (0 = until input ends)")
	askCmd.Flags().Bool("no-record", false, "Do not record answers in the database")
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/boundary"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Machine interface: JSON request on stdin, JSON response on stdout",
}

var apiGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a question from {positive_skills, negative_skills, settings}",
	Long: `Read a generate request and print [question, answer, skills], or null
when no question satisfies the constraints.

  {"positive_skills": ["subtract"], "negative_skills": ["negative"],
   "settings": {"min_number": 0, "max_number": 99}}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveAPI(cmd, boundary.NewService(newGenerator()).GenerateJSON)
	},
}

var apiCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Grade an answer from {skills, answer, correct_answer, question}",
	Long: `Read a check request and print {overall_score, score_dict, judgment}.

  {"skills": ["subtract"], "answer": {"answer": -7},
   "correct_answer": {"answer": 7},
   "question": {"first_operand": 12, "second_operand": 5, "operator": "-"}}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveAPI(cmd, boundary.CheckAnswerJSON)
	},
}

// serveAPI reads one request document from stdin and writes the response.
func serveAPI(cmd *cobra.Command, handle func([]byte) ([]byte, error)) error {
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	out, err := handle(raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func init() {
	apiCmd.AddCommand(apiGenerateCmd)
	apiCmd.AddCommand(apiCheckCmd)
}

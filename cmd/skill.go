package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/skills"
	"github.com/abhisek/mathdrill/internal/trainer"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill tags",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every skill tag with what requiring or excluding it means",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
			Headers("TAG", "NAME", "WITH", "WITHOUT").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})

		for _, tag := range skills.AllTags() {
			with, err := skills.Describe(tag, true)
			if err != nil {
				return err
			}
			without, err := skills.Describe(tag, false)
			if err != nil {
				return err
			}
			t.Row(string(tag), skills.DisplayName(tag), with, without)
		}

		lipgloss.Fprintln(cmd.OutOrStdout(), t.Render())
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d skills\n", len(skills.AllTags()))
		return nil
	},
}

var skillDescribeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Explain the constraints selected by --with and --without",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := constraintsFromFlags(cmd)
		if err != nil {
			return err
		}
		sess := trainer.NewSession()
		sess.Constraints = c
		tr := trainer.NewWithSession(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
		if err := tr.DescribeSkills(); err != nil {
			return err
		}
		if c.Contradictory() {
			fmt.Fprintln(cmd.OutOrStdout(), "\nNo question can satisfy a skill that is both required and excluded.")
		}
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillDescribeCmd)
}

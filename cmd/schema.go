package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/sqlschema"
	"github.com/abhisek/mathdrill/internal/store"
)

var schemaCmd = &cobra.Command{
	Use:       "schema [question|answer|attempt]",
	Short:     "Print CREATE TABLE statements for the stored entities",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"question", "answer", "attempt"},
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, _ := cmd.Flags().GetString("pk")

		entities := sqlschema.Entities()
		names := make([]string, 0, len(entities))
		if len(args) == 1 {
			if _, ok := entities[args[0]]; !ok {
				return fmt.Errorf("unknown entity %q", args[0])
			}
			names = append(names, args[0])
		} else {
			for name := range entities {
				names = append(names, name)
			}
			sort.Strings(names)
		}

		for _, name := range names {
			ddl, err := sqlschema.CreateTableFor(pk, entities[name])
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ddl+";")
		}
		return nil
	},
}

func init() {
	schemaCmd.Flags().String("pk", store.PrimaryKey, "Primary key column name")
}

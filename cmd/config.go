// Package cmd implements the command-line interface for aniserve.
package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/anisan-cli/aniserve/config"
	"github.com/anisan-cli/aniserve/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

// configCmd prints every configuration field with its current value.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration fields and their current values",
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)
		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		cmd.Printf("Config path: %s\n\n", where.Config())
		for _, field := range fields {
			cmd.Printf("%s\n", field.Description)
			cmd.Printf("Key:     %s\n", field.Key)
			cmd.Printf("Env:     %s\n", field.Env())
			cmd.Printf("Default: %v\n", field.Value)
			cmd.Printf("Current: %v\n\n", viper.Get(field.Key))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d fields in total\n", len(fields))
	},
}

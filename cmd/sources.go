// Package cmd implements the command-line interface for aniserve.
package cmd

import (
	"github.com/anisan-cli/aniserve/key"
	"github.com/anisan-cli/aniserve/provider"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd lists the providers the server can be backed by.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the available provider sources",
	Run: func(cmd *cobra.Command, args []string) {
		selected := viper.GetString(key.DefaultSource)
		for _, p := range provider.Builtins() {
			marker := " "
			if p.ID == selected {
				marker = "*"
			}
			cmd.Printf("%s %s (%s)\n", marker, p.ID, p.Name)
		}
	},
}

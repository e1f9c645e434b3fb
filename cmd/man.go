// Copyright © 2026 Sara Regibo

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"
)

// manCmd represents the man command
var manCmd = &cobra.Command{
	Use:   "man",
	Short: "Generate man pages",
	Long:  `Generates a set of man pages for summavi`,
	Run: func(cmd *cobra.Command, args []string) {
		header := &doc.GenManHeader{
			Title:   "SUMMAVI",
			Section: "3",
		}
		doc.GenManTree(RootCmd, header, viper.GetString("output"))
	},
}

func init() {
	docCmd.AddCommand(manCmd)
}

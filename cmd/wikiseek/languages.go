package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikiseek/wikiseek/domain/language"
)

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported Wikipedia language editions",
		Run: func(cmd *cobra.Command, args []string) {
			for _, l := range language.All() {
				fmt.Printf("%s  %-4s %s\n", l.Flag(), l.Code(), l.Name())
			}
		},
	}
}

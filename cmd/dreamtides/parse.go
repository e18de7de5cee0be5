package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamtides/dtengine/cardtext"
)

var parseCmd = &cobra.Command{
	Use:   "parse <card-text>",
	Short: "Parse card text through the cardtext DSL and print the resulting abilities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abilities, err := cardtext.ParseCardText(args[0], nil)
		if err != nil {
			return err
		}
		if len(abilities) == 0 {
			fmt.Println("(no abilities parsed)")
			return nil
		}
		for i, a := range abilities {
			fmt.Printf("%d: %+v\n", i, a)
		}
		return nil
	},
}

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"tools.zach/dev/colorlit/csscolor"
)

func newNamesCmd(a *app) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "names",
		Short: "List the CSS named colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter = strings.ToLower(filter)
			for _, name := range csscolor.Names() {
				if filter != "" && !strings.Contains(name, filter) {
					continue
				}
				c, _ := csscolor.Lookup(name)
				a.printColor(name, c)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Only list names containing this substring")
	return cmd
}

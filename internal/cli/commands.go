package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/textframe/pkg/client"
)

// commandsCommand lists the registered command names.
func (c *CLI) commandsCommand() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List commands available to invoke",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := c.Registry.Names()
			if remote != "" {
				var err error
				names, err = client.New(remote, nil).Commands(cmd.Context())
				if err != nil {
					return err
				}
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "list commands of a textframe server at this URL")
	return cmd
}

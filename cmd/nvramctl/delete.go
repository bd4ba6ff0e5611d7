package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MikeBeaton/macos-boot-helper/nvram"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a variable",
		Long: `The delete command removes a variable by writing a zero-length payload.

Example:
  nvramctl delete boot-args`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	name := args[0]

	ns, err := namespaceArg()
	if err != nil {
		return err
	}

	err = nvram.Delete(openStore(), name, ns)
	if errors.Is(err, nvram.ErrNotFound) {
		printInfo("%s\n", styled(mutedStyle, name+" not present"))
		return nil
	}
	if err != nil {
		printError("%v\n", err)
		return err
	}
	printInfo("%s\n", styled(successStyle, "Deleting "+name))
	return nil
}

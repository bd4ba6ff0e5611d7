package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MikeBeaton/macos-boot-helper/nvram"
)

var (
	getRaw    bool
	getNoGuid bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getRaw, "raw", false, "Hex-escape every byte instead of showing printable text")
	cmd.Flags().BoolVar(&getNoGuid, "no-guid", false, "Omit the namespace prefix")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Display a single variable",
		Long: `The get command reads and displays one variable from the store.

Example:
  nvramctl get boot-args
  nvramctl get BootOrder --namespace 8be4df61-93ca-11d2-aa0d-00e098032b8c
  nvramctl get csr-active-config --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	name := args[0]

	ns, err := namespaceArg()
	if err != nil {
		return err
	}
	r, err := buildRenderer()
	if err != nil {
		return err
	}

	opts := nvram.DefaultListOptions()
	opts.AsText = !getRaw
	opts.ShowNamespace = !getNoGuid

	err = nvram.NewLister(openStore(), r, opts).Display(name, ns)
	if errors.Is(err, nvram.ErrNotFound) {
		// The NotFound line has already been printed.
		return nil
	}
	return err
}

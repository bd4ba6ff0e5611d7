package main

import (
	"github.com/spf13/cobra"

	"github.com/MikeBeaton/macos-boot-helper/cmd/nvramctl/logger"
	"github.com/MikeBeaton/macos-boot-helper/nvram"
)

var (
	listAll    bool
	listBatch  bool
	listRaw    bool
	listNoGuid bool
)

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show everything without pausing")
	cmd.Flags().BoolVar(&listBatch, "batch", false, "Never pause, even on a terminal")
	cmd.Flags().BoolVar(&listRaw, "raw", false, "Hex-escape every byte instead of showing printable text")
	cmd.Flags().BoolVar(&listNoGuid, "no-guid", false, "Omit the namespace prefix from each line")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every variable in the store",
		Long: `The list command walks the full variable store in its intrinsic order,
printing one line per variable:

  <namespace>:<name> = <value> [(non-persistent)]

On a terminal it pauses after each entry: press q or x to stop, a to show
the rest without pausing, any other key for the next entry.

Example:
  nvramctl list
  nvramctl list --all
  nvramctl list --batch --raw > vars.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
	return cmd
}

func runList() error {
	st := openStore()
	r, err := buildRenderer()
	if err != nil {
		return err
	}

	opts := nvram.DefaultListOptions()
	opts.ShowAll = listAll
	opts.AsText = !listRaw
	opts.ShowNamespace = !listNoGuid
	opts.Interactive = !listBatch && stdinIsTerminal()
	if opts.Interactive {
		opts.Keys = newTermKeys()
	}

	printVerbose("Listing variables from %s\n", storeDir)
	logger.L.Debug("list", "interactive", opts.Interactive, "showAll", opts.ShowAll)

	return nvram.NewLister(st, r, opts).Run()
}

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeBeaton/macos-boot-helper/cmd/nvramctl/logger"
	"github.com/MikeBeaton/macos-boot-helper/nvram"
)

var setHex bool

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setHex, "hex", false, "Interpret the value as hex bytes")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Set a variable to a value, idempotently",
		Long: `The set command writes a variable unless it already holds the given
value, in which case the store is left untouched.

Example:
  nvramctl set boot-args "-v"
  nvramctl set csr-active-config 77000000 --hex`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args, false, setHex)
		},
	}
	return cmd
}

func runSet(args []string, toggle, asHex bool) error {
	name := args[0]

	ns, err := namespaceArg()
	if err != nil {
		return err
	}
	value, err := parseValue(args[1], asHex)
	if err != nil {
		return err
	}

	outcome, err := nvram.ToggleOrSet(openStore(), name, ns, value, toggle)
	if err != nil {
		return err
	}
	logger.L.Debug("toggle-or-set", "name", name, "toggle", toggle, "outcome", outcome.String())
	reportOutcome(name, outcome)
	return nil
}

// parseValue turns the command-line value into payload bytes.
func parseValue(v string, asHex bool) ([]byte, error) {
	if !asHex {
		return []byte(v), nil
	}
	cleaned := strings.NewReplacer(" ", "", ":", "").Replace(v)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex value %q: %w", v, err)
	}
	return data, nil
}

func reportOutcome(name string, outcome nvram.Outcome) {
	switch outcome {
	case nvram.OutcomeSet:
		printInfo("%s\n", styled(successStyle, "Setting "+name))
	case nvram.OutcomeDeleted:
		printInfo("%s\n", styled(successStyle, "Deleting "+name))
	default:
		printInfo("%s\n", styled(mutedStyle, "Not setting "+name+", already set"))
	}
}

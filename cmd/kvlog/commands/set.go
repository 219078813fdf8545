package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a value under a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		prev, existed, err := store.Set(args[0], args[1])
		if err != nil {
			return err
		}

		if existed {
			slog.Debug("overwrote key", "key", args[0], "previous", prev)
		}
		return nil
	},
}

package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/0xRadioAc7iv/go-kvlog/core"
)

var rmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Remove a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Remove(args[0]); err != nil {
			if errors.Is(err, core.ErrKeyNotFound) {
				return errors.New("Key not found")
			}
			return err
		}
		return nil
	},
}

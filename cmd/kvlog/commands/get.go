package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		value, found, err := store.Get(args[0])
		if err != nil {
			return err
		}

		// A missing key is an answer, not a failure.
		if !found {
			fmt.Println("Key not found")
			return nil
		}

		fmt.Println(value)
		return nil
	},
}

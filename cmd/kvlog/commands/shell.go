package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0xRadioAc7iv/go-kvlog/core"
	"github.com/0xRadioAc7iv/go-kvlog/internal/shellparse"
)

const shellHelp = `Available Commands:

SET <key> <value>
  Store a value for the given key. Quote values containing spaces.

GET <key>
  Print the value associated with the key, or "Key not found".

RM <key>
  Remove the key and its value.

KEYS
  List all stored keys.

HELP
  Show this help message.

EXIT
  Close the store and quit.`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive session against one open store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		fmt.Printf("Store open at %s\n", resolveDir())
		fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

		reader := bufio.NewReader(os.Stdin)

		for {
			fmt.Print("> ")

			line, err := reader.ReadString('\n')
			if err != nil {
				// EOF (Ctrl+D) ends the session cleanly.
				fmt.Println()
				return nil
			}

			if strings.TrimSpace(line) == "" {
				continue
			}

			name, cmdArgs, err := shellparse.Fields(line)
			if err != nil {
				fmt.Println("parse error:", err)
				continue
			}

			if name == "exit" {
				return nil
			}

			runShellCommand(store, name, cmdArgs)
		}
	},
}

func runShellCommand(store *core.Store, name string, args []string) {
	switch name {
	case "set":
		if len(args) != 2 {
			fmt.Println("usage: set <key> <value>")
			return
		}
		if _, _, err := store.Set(args[0], args[1]); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("ok")

	case "get":
		if len(args) != 1 {
			fmt.Println("usage: get <key>")
			return
		}
		value, found, err := store.Get(args[0])
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if !found {
			fmt.Println("Key not found")
			return
		}
		fmt.Println(value)

	case "rm":
		if len(args) != 1 {
			fmt.Println("usage: rm <key>")
			return
		}
		if err := store.Remove(args[0]); err != nil {
			if errors.Is(err, core.ErrKeyNotFound) {
				fmt.Println("Key not found")
				return
			}
			fmt.Println("error:", err)
			return
		}
		fmt.Println("ok")

	case "keys":
		keys := store.Keys()
		if len(keys) == 0 {
			fmt.Println("(empty)")
			return
		}
		for _, key := range keys {
			fmt.Println(key)
		}

	case "help":
		fmt.Println(shellHelp)

	default:
		fmt.Println("Invalid Command")
	}
}

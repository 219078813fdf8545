package command

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Op identifies the kind of a Command.
type Op string

const (
	OpSet    Op = "set"
	OpRemove Op = "rm"
	OpGet    Op = "get"
)

// Command represents a single store operation.
//
// Set and Remove commands are the only ones ever written to the log file;
// Get exists purely as an in-memory request shape and never persists.
type Command struct {
	Op    Op     `json:"op"`
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

func Set(key, value string) Command {
	return Command{Op: OpSet, Key: key, Value: value}
}

func Remove(key string) Command {
	return Command{Op: OpRemove, Key: key}
}

func Get(key string) Command {
	return Command{Op: OpGet, Key: key}
}

// Encode serializes a command into its on-disk form: a single JSON object
// followed by a newline.
//
// The returned line is self-terminating: reading back exactly len(line)
// bytes from wherever it was written yields a decodable record, independent
// of any surrounding bytes.
func Encode(cmd Command) ([]byte, error) {
	data, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encode command: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses one encoded record, with or without its trailing newline.
// Malformed, truncated, or unknown-op input fails with an error.
func Decode(line []byte) (Command, error) {
	line = bytes.TrimSuffix(line, []byte{'\n'})

	var cmd Command
	if err := json.Unmarshal(line, &cmd); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}

	switch cmd.Op {
	case OpSet, OpRemove, OpGet:
		return cmd, nil
	default:
		return Command{}, fmt.Errorf("decode command: unknown op %q", cmd.Op)
	}
}

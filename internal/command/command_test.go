package command_test

import (
	"bytes"
	"testing"

	"github.com/0xRadioAc7iv/go-kvlog/internal/command"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cmds := []command.Command{
		command.Set("foo", "bar"),
		command.Set("empty-value", ""),
		command.Set("spaced key", "a considerably longer value with spaces"),
		command.Remove("foo"),
		command.Get("foo"),
	}

	for _, cmd := range cmds {
		encoded, err := command.Encode(cmd)
		if err != nil {
			t.Fatalf("encode %v: %v", cmd, err)
		}

		decoded, err := command.Decode(encoded)
		if err != nil {
			t.Fatalf("decode %q: %v", encoded, err)
		}

		if decoded != cmd {
			t.Fatalf("round trip mismatch: got %v, want %v", decoded, cmd)
		}
	}
}

func TestEncodeIsNewlineTerminated(t *testing.T) {
	encoded, err := command.Encode(command.Set("k", "v"))
	if err != nil {
		t.Fatal(err)
	}

	if encoded[len(encoded)-1] != '\n' {
		t.Fatalf("expected trailing newline, got %q", encoded)
	}

	if bytes.Count(encoded, []byte{'\n'}) != 1 {
		t.Fatalf("expected exactly one newline, got %q", encoded)
	}
}

func TestDecodeWithoutNewline(t *testing.T) {
	encoded, err := command.Encode(command.Remove("k"))
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := command.Decode(bytes.TrimSuffix(encoded, []byte{'\n'}))
	if err != nil {
		t.Fatalf("decode without newline: %v", err)
	}

	if decoded != command.Remove("k") {
		t.Fatalf("got %v", decoded)
	}
}

func TestDecodeMalformedInput(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("\n"),
		[]byte("not json\n"),
		[]byte(`{"op":"set","key":"a"`), // truncated
		[]byte(`{"op":"frobnicate","key":"a"}` + "\n"),
		[]byte(`{"key":"a","value":"1"}` + "\n"), // missing op
		[]byte("null\n"),
	}

	for _, input := range inputs {
		if _, err := command.Decode(input); err == nil {
			t.Errorf("expected decode error for %q", input)
		}
	}
}

package shellparse_test

import (
	"errors"
	"testing"

	"github.com/0xRadioAc7iv/go-kvlog/internal/shellparse"
)

func TestFields(t *testing.T) {
	cmd, args, err := shellparse.Fields(`SET greeting "hello world"`)
	if err != nil {
		t.Fatal(err)
	}
	if cmd != "set" {
		t.Errorf("expected lowercased command, got %q", cmd)
	}
	if len(args) != 2 || args[0] != "greeting" || args[1] != "hello world" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFieldsEmptyInput(t *testing.T) {
	_, _, err := shellparse.Fields("   ")
	if !errors.Is(err, shellparse.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestFieldsUnterminatedQuote(t *testing.T) {
	if _, _, err := shellparse.Fields(`set k "oops`); err == nil {
		t.Error("expected error for unterminated quote")
	}
}

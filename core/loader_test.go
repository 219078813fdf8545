package core_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xRadioAc7iv/go-kvlog/core"
	"github.com/0xRadioAc7iv/go-kvlog/internal/command"
)

// writeRawLog seeds a store directory with hand-built log bytes before the
// store has ever been opened.
func writeRawLog(t *testing.T, dir string, records ...[]byte) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, core.LogFileName), bytes.Join(records, nil), 0644); err != nil {
		t.Fatal(err)
	}
}

func encodeRecord(t *testing.T, cmd command.Command) []byte {
	t.Helper()

	data, err := command.Encode(cmd)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestReplayRebuildsIndex(t *testing.T) {
	dir := t.TempDir()
	writeRawLog(t, dir,
		encodeRecord(t, command.Set("a", "1")),
		encodeRecord(t, command.Set("b", "2")),
		encodeRecord(t, command.Set("a", "3")),
		encodeRecord(t, command.Remove("b")),
	)

	s, err := core.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	val, found, err := s.Get("a")
	if err != nil || !found || val != "3" {
		t.Fatalf("Get(a) = %q, %v, %v; want the latest set", val, found, err)
	}

	if _, found, _ := s.Get("b"); found {
		t.Fatal("removed key b still visible after replay")
	}
}

func TestReplayRemoveWithoutSetIsNoOp(t *testing.T) {
	dir := t.TempDir()

	// A Remove whose matching Set predates the retained history must not
	// fail the replay.
	writeRawLog(t, dir,
		encodeRecord(t, command.Remove("ancient")),
		encodeRecord(t, command.Set("k", "v")),
	)

	s, err := core.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	val, found, err := s.Get("k")
	if err != nil || !found || val != "v" {
		t.Fatalf("Get(k) = %q, %v, %v", val, found, err)
	}
}

func TestOpenFailsOnGarbageRecord(t *testing.T) {
	dir := t.TempDir()
	writeRawLog(t, dir,
		encodeRecord(t, command.Set("a", "1")),
		[]byte("this is not a record\n"),
	)

	_, err := core.Open(dir)
	if !errors.Is(err, core.ErrCorruptLog) {
		t.Fatalf("expected ErrCorruptLog, got %v", err)
	}
}

func TestOpenFailsOnTruncatedTail(t *testing.T) {
	dir := t.TempDir()

	full := encodeRecord(t, command.Set("k", "value"))
	writeRawLog(t, dir,
		encodeRecord(t, command.Set("a", "1")),
		full[:len(full)-4], // cut mid-record
	)

	_, err := core.Open(dir)
	if !errors.Is(err, core.ErrCorruptLog) {
		t.Fatalf("expected ErrCorruptLog, got %v", err)
	}
}

func TestOpenEmptyDirectory(t *testing.T) {
	s, err := core.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open on empty directory: %v", err)
	}
	defer s.Close()

	if keys := s.Keys(); len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}

func TestOpenCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")

	s, err := core.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, core.LogFileName)); err != nil {
		t.Fatalf("log file was not created: %v", err)
	}
}

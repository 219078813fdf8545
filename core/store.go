package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/0xRadioAc7iv/go-kvlog/internal/command"
	"github.com/0xRadioAc7iv/go-kvlog/internal/lock"
)

// Store is a log-structured key-value store over a single directory.
//
// All durable state lives in one append-only log file of newline-terminated
// command records; point lookups go through an in-memory index rebuilt by
// full replay on Open. A Store assumes exclusive ownership of its directory
// for its whole open lifetime, enforced with a lock file, and supports no
// concurrent access: callers needing multi-client use must serialize
// outside this engine.
type Store struct {
	dir      string
	lockFile *os.File
	log      *logFile
	index    Index
	closed   bool
}

// Open opens the store rooted at dir, creating the directory and log file
// if absent, and replays the entire log to rebuild the index before any
// operation is accepted.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	lockFile, err := lock.LockDirectory(dir)
	if err != nil {
		return nil, err
	}

	log, err := openLogFile(filepath.Join(dir, LogFileName))
	if err != nil {
		lock.UnlockDirectory(lockFile)
		return nil, err
	}

	index, err := loadLog(log)
	if err != nil {
		log.close()
		lock.UnlockDirectory(lockFile)
		return nil, err
	}

	return &Store{
		dir:      dir,
		lockFile: lockFile,
		log:      log,
		index:    index,
	}, nil
}

// Set stores value under key, returning the previously stored value and
// whether the key already existed.
//
// A new key appends; an overwrite whose encoding matches the old record's
// length is written in place; a length change triggers a full compaction
// pass, which also reclaims all stale bytes.
func (s *Store) Set(key, value string) (string, bool, error) {
	if s.closed {
		return "", false, ErrStoreClosed
	}

	encoded, err := command.Encode(command.Set(key, value))
	if err != nil {
		return "", false, err
	}

	loc, exists := s.index.Lookup(key)

	var prev string
	if exists {
		prev, err = s.readValue(key, loc)
		if err != nil {
			return "", false, err
		}
	}

	switch {
	case !exists:
		offset, err := s.log.append(encoded)
		if err != nil {
			return "", false, err
		}
		s.index.Insert(key, Location{Offset: uint64(offset), Length: uint64(len(encoded))})

	case uint64(len(encoded)) == loc.Length:
		if err := s.log.writeAt(int64(loc.Offset), encoded); err != nil {
			return "", false, err
		}

	default:
		if err := s.compact(key, encoded); err != nil {
			return "", false, err
		}
	}

	return prev, exists, nil
}

// Get returns the value stored under key. A missing key is reported via
// the second return value, not an error.
func (s *Store) Get(key string) (string, bool, error) {
	if s.closed {
		return "", false, ErrStoreClosed
	}

	loc, ok := s.index.Lookup(key)
	if !ok {
		return "", false, nil
	}

	value, err := s.readValue(key, loc)
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Remove deletes key from the store. It fails with ErrKeyNotFound when the
// key has no live entry; otherwise it appends a tombstone record, leaving
// the superseded bytes for a future compaction to reclaim.
func (s *Store) Remove(key string) error {
	if s.closed {
		return ErrStoreClosed
	}

	if _, ok := s.index.Lookup(key); !ok {
		return ErrKeyNotFound
	}

	encoded, err := command.Encode(command.Remove(key))
	if err != nil {
		return err
	}
	if _, err := s.log.append(encoded); err != nil {
		return err
	}

	s.index.Delete(key)
	return nil
}

// Keys returns a sorted snapshot of the live keys.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.index))
	for key := range s.index {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Close releases the log handle and the directory lock. Further operations
// fail with ErrStoreClosed.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.log.close()
	lock.UnlockDirectory(s.lockFile)
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// readValue positional-reads the record at loc and extracts its value.
// Anything other than a decodable Set at an indexed location means the
// index and the log disagree, which is a corrupt-log condition.
func (s *Store) readValue(key string, loc Location) (string, error) {
	data, err := s.log.readAt(int64(loc.Offset), int64(loc.Length))
	if err != nil {
		return "", err
	}

	cmd, err := command.Decode(data)
	if err != nil {
		return "", fmt.Errorf("%w: key %q at offset %d: %v", ErrCorruptLog, key, loc.Offset, err)
	}
	if cmd.Op != command.OpSet {
		return "", fmt.Errorf("%w: key %q at offset %d: found %q record", ErrCorruptLog, key, loc.Offset, cmd.Op)
	}

	return cmd.Value, nil
}

package core

import (
	"fmt"
	"os"
	"sort"
)

// compact rewrites the log to hold only the live records, contiguous and
// offset-ascending, substituting encoded for the record currently indexed
// under key. Set invokes it exactly when the new encoding's length differs
// from the indexed length, since an in-place overwrite would shift every
// following byte.
//
// Index mutation is deferred until after the rename onto the log path
// succeeds; a failure at any earlier step removes the temporary file and
// leaves both the original file and the index untouched.
func (s *Store) compact(key string, encoded []byte) error {
	entries := s.index.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Loc.Offset < entries[j].Loc.Offset
	})

	tmp, err := os.CreateTemp(s.dir, CompactTempPattern)
	if err != nil {
		return fmt.Errorf("create compaction file: %w", err)
	}
	tmpPath := tmp.Name()

	newLocs, err := writeCompacted(tmp, s.log, entries, key, encoded)
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync compaction file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close compaction file: %w", err)
	}

	if err := s.log.replace(tmpPath); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// The rename was the commit point; only now does the index move.
	index := make(Index, len(newLocs))
	for _, entry := range newLocs {
		index.Insert(entry.Key, entry.Loc)
	}
	s.index = index

	return nil
}

// writeCompacted streams the live records into tmp in physical order,
// reading every record except the one being updated from the old log at
// its recorded range. It returns the entries' new locations.
func writeCompacted(tmp *os.File, old *logFile, entries []Entry, key string, encoded []byte) ([]Entry, error) {
	newLocs := make([]Entry, 0, len(entries))

	var cursor uint64
	for _, entry := range entries {
		var data []byte
		if entry.Key == key {
			data = encoded
		} else {
			read, err := old.readAt(int64(entry.Loc.Offset), int64(entry.Loc.Length))
			if err != nil {
				return nil, fmt.Errorf("compact %q: %w", entry.Key, err)
			}
			data = read
		}

		if _, err := tmp.Write(data); err != nil {
			return nil, fmt.Errorf("compact %q: %w", entry.Key, err)
		}

		newLocs = append(newLocs, Entry{
			Key: entry.Key,
			Loc: Location{Offset: cursor, Length: uint64(len(data))},
		})
		cursor += uint64(len(data))
	}

	return newLocs, nil
}

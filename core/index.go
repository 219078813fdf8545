package core

// Location identifies the exact byte range of one encoded record inside
// the log file.
//
// Length counts every byte of the record including its newline terminator,
// so reading Length bytes starting at Offset always yields a complete,
// independently decodable record.
type Location struct {
	Offset uint64 // Byte position where the record starts
	Length uint64 // Total record size in bytes, terminator included
}

// Entry is one key together with the Location of its current live record.
// It is the unit the compactor snapshots and reorders.
type Entry struct {
	Key string
	Loc Location
}

// Index is the in-memory mapping from each key to the Location of its most
// recent Set record not yet superseded by a later Set or Remove.
//
// It is rebuilt once per Open by replaying the log and is never itself
// persisted.
type Index map[string]Location

// Lookup returns the Location for key, if the key is live.
func (ix Index) Lookup(key string) (Location, bool) {
	loc, ok := ix[key]
	return loc, ok
}

// Insert records key at loc, returning the previous Location if the key
// was already live.
func (ix Index) Insert(key string, loc Location) (Location, bool) {
	prev, ok := ix[key]
	ix[key] = loc
	return prev, ok
}

// Delete removes key from the index, reporting whether it was present.
func (ix Index) Delete(key string) (Location, bool) {
	prev, ok := ix[key]
	if ok {
		delete(ix, key)
	}
	return prev, ok
}

// Entries returns a snapshot of all live entries in no particular order.
func (ix Index) Entries() []Entry {
	entries := make([]Entry, 0, len(ix))
	for key, loc := range ix {
		entries = append(entries, Entry{Key: key, Loc: loc})
	}
	return entries
}

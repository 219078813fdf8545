package core

const (
	// LogFileName is the fixed name of the store's log file inside its
	// directory. A store owns exactly one log file.
	LogFileName = "kvlog.data"

	// CompactTempPattern names the transient file a compaction pass writes
	// before renaming it onto LogFileName. It never outlives the pass.
	CompactTempPattern = "kvlog-compact-*.tmp"
)

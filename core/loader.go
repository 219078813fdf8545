package core

import (
	"bufio"
	"fmt"
	"io"

	"github.com/0xRadioAc7iv/go-kvlog/internal/command"
)

// loadLog rebuilds the index by sequentially replaying every record in the
// log, from byte 0. It runs once, inside Open, before any operation is
// accepted.
//
// The byte cursor advances by exactly each record's encoded length
// (terminator included) whether or not the record changes the index. A
// Remove for a key with no live entry is a no-op here: the log may
// legitimately hold a Remove whose matching Set predates the retained
// history. Any record that fails to decode makes the whole log corrupt.
func loadLog(lf *logFile) (Index, error) {
	index := make(Index)
	reader := bufio.NewReader(lf.sectionReader())

	var cursor uint64
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) == 0 && err == io.EOF {
			return index, nil
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("replay log at offset %d: %w", cursor, err)
		}
		if line[len(line)-1] != '\n' {
			// Truncated final record.
			return nil, fmt.Errorf("%w: unterminated record at offset %d", ErrCorruptLog, cursor)
		}

		cmd, err := command.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("%w: offset %d: %v", ErrCorruptLog, cursor, err)
		}

		switch cmd.Op {
		case command.OpSet:
			index.Insert(cmd.Key, Location{Offset: cursor, Length: uint64(len(line))})
		case command.OpRemove:
			index.Delete(cmd.Key)
		}

		cursor += uint64(len(line))
	}
}

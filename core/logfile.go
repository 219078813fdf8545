package core

import (
	"fmt"
	"io"
	"os"
)

// logFile wraps the store's single on-disk byte sequence. It is
// append-only by convention: content changes only via append, an
// equal-length positional overwrite, or wholesale replacement by
// compaction.
type logFile struct {
	f    *os.File
	path string
	size int64
}

func openLogFile(path string) (*logFile, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat log file: %w", err)
	}

	return &logFile{f: f, path: path, size: info.Size()}, nil
}

// append writes data at the current end of file and returns the offset the
// write began at.
func (lf *logFile) append(data []byte) (int64, error) {
	n, err := lf.f.WriteAt(data, lf.size)
	if err != nil {
		return 0, fmt.Errorf("append to log: %w", err)
	}

	offset := lf.size
	lf.size += int64(n)
	return offset, nil
}

// writeAt overwrites bytes in place without appending. It is only ever
// called with data of exactly the length of the record already occupying
// offset, so no following bytes shift.
func (lf *logFile) writeAt(offset int64, data []byte) error {
	if _, err := lf.f.WriteAt(data, offset); err != nil {
		return fmt.Errorf("write log at %d: %w", offset, err)
	}
	return nil
}

// readAt reads exactly length bytes starting at offset.
func (lf *logFile) readAt(offset, length int64) ([]byte, error) {
	buf := make([]byte, length)
	if _, err := lf.f.ReadAt(buf, offset); err != nil {
		return nil, fmt.Errorf("read log at %d: %w", offset, err)
	}
	return buf, nil
}

// sectionReader exposes the current file contents for sequential replay.
func (lf *logFile) sectionReader() io.Reader {
	return io.NewSectionReader(lf.f, 0, lf.size)
}

// replace atomically installs the file at tmpPath as the active log by
// renaming it onto the fixed path, then reopens the handle. The rename is
// the single commit point: any failure before it leaves the previous file
// wholly unaffected.
func (lf *logFile) replace(tmpPath string) error {
	if err := os.Rename(tmpPath, lf.path); err != nil {
		return fmt.Errorf("install compacted log: %w", err)
	}

	// The old handle still refers to the replaced inode.
	lf.f.Close()

	f, err := os.OpenFile(lf.path, os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("reopen log file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}

	lf.f = f
	lf.size = info.Size()
	return nil
}

func (lf *logFile) close() error {
	return lf.f.Close()
}

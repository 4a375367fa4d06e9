package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logFileName     = "quadchat.log"
	backupTimestamp = "20060102-150405.000"
	logFilePerm     = 0o600
	logDirPerm      = 0o755
)

// RotatingFile is an io.WriteCloser appending to dir/quadchat.log. When a
// write would grow the file past maxBytes the file is moved aside, gzipped,
// and only the newest maxBackups archives are kept.
type RotatingFile struct {
	mu         sync.Mutex
	dir        string
	maxBytes   int64
	maxBackups int
	file       *os.File
	size       int64
}

// OpenRotatingFile opens (or creates) the log file in dir.
func OpenRotatingFile(dir string, maxSizeMB, maxBackups int) (*RotatingFile, error) {
	if maxSizeMB <= 0 {
		return nil, fmt.Errorf("log max size must be positive, got %d", maxSizeMB)
	}
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	r := &RotatingFile{
		dir:        dir,
		maxBytes:   int64(maxSizeMB) << 20,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *RotatingFile) Path() string {
	return filepath.Join(r.dir, logFileName)
}

func (r *RotatingFile) open() error {
	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxBytes {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate must be called with r.mu held.
func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	archive := fmt.Sprintf("%s.%s", r.Path(), time.Now().Format(backupTimestamp))
	if err := os.Rename(r.Path(), archive); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	// A failed compression leaves the plain archive behind.
	if err := gzipFile(archive); err == nil {
		_ = os.Remove(archive)
	}
	r.prune()

	return r.open()
}

func (r *RotatingFile) prune() {
	if r.maxBackups <= 0 {
		return
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	var archives []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), logFileName+".") {
			archives = append(archives, e.Name())
		}
	}
	if len(archives) <= r.maxBackups {
		return
	}

	// Timestamps sort lexically.
	sort.Strings(archives)
	for _, name := range archives[:len(archives)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, name))
	}
}

// Close closes the active file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

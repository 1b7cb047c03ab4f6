// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fallible

//go:generate mockgen -source file.go -destination file_mocks.go -package fallible

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
	"unicode/utf8"

	"github.com/0xsoniclabs/fallible/common"
	"github.com/0xsoniclabs/fallible/common/result"
)

const (
	// ErrOpenFailed identifies an IoFailure raised while opening a file.
	ErrOpenFailed = common.ConstError("open failed")
	// ErrReadFailed identifies an IoFailure raised while reading an opened file.
	ErrReadFailed = common.ConstError("read failed")
	// ErrInvalidUTF8 is the cause of a read failure for content that is not text.
	ErrInvalidUTF8 = common.ConstError("stream did not contain valid UTF-8")
)

// File is a handle on an opened file. It must be closed once it is no longer
// needed.
type File interface {
	io.Reader
	io.Closer
}

// FileSystem opens files by path.
type FileSystem interface {
	Open(path string) (File, error)
}

// OSFileSystem is the FileSystem of the host operating system.
type OSFileSystem struct{}

// Open opens the named file for reading. Directories can not be opened as
// files and are reported with syscall.EISDIR.
func (OSFileSystem) Open(path string) (File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, &fs.PathError{Op: "open", Path: path, Err: syscall.EISDIR}
	}
	return file, nil
}

type IoFailureKind int

const (
	OpenFailed IoFailureKind = iota
	ReadFailed
)

func (k IoFailureKind) String() string {
	switch k {
	case OpenFailed:
		return "OpenFailed"
	case ReadFailed:
		return "ReadFailed"
	}
	return fmt.Sprintf("IoFailureKind(%d)", int(k))
}

// IoFailure reports that a file could not be opened or read. Err is the cause
// as reported by the file system, unchanged; it is accessible through
// errors.Is and errors.As. The kind of failure can be tested with
// errors.Is(err, ErrOpenFailed) and errors.Is(err, ErrReadFailed).
type IoFailure struct {
	Kind IoFailureKind
	Path string
	Err  error
}

func (e *IoFailure) Error() string {
	return e.Err.Error()
}

func (e *IoFailure) Unwrap() error {
	return e.Err
}

func (e *IoFailure) Is(target error) bool {
	switch target {
	case ErrOpenFailed:
		return e.Kind == OpenFailed
	case ErrReadFailed:
		return e.Kind == ReadFailed
	}
	return false
}

// ReadFileContents returns the full text content of the file at the given
// path, which may be absolute or relative to the working directory.
func ReadFileContents(path string) (string, error) {
	return ReadFileContentsFrom(OSFileSystem{}, path)
}

// ReadFileContentsFrom reads the full text content of a file opened through
// the given file system. The first failing step ends the read: a failed open
// is reported as an OpenFailed IoFailure, a failed read as a ReadFailed one.
// Data read before a failure is discarded. The file is closed exactly once on
// every path that opened it.
func ReadFileContentsFrom(fsys FileSystem, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", &IoFailure{Kind: OpenFailed, Path: path, Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", &IoFailure{Kind: ReadFailed, Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IoFailure{Kind: ReadFailed, Path: path, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}

// ReadFileContentsResult is ReadFileContents expressed as a Result.
func ReadFileContentsResult(path string) result.Result[string] {
	return result.From(ReadFileContents(path))
}

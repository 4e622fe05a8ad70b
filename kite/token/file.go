package token

import (
	"bytes"
	"fmt"
	"os"
)

// File is a named source buffer with the offset of each line start, used to
// print the offending line under a diagnostic.
type File struct {
	Name  string
	Src   []byte
	Lines []int // Offset of the first byte of each line
	Err   error // Read error, if any. The file is then empty.
}

// NewFile creates a file from src, which may be a string or byte slice. When
// src is nil the file is read from disk. Read errors are stored in Err.
func NewFile(filename string, src any) *File {
	f := &File{Name: filename}

	switch src := src.(type) {
	case nil:
		f.Src, f.Err = os.ReadFile(filename)
	case string:
		f.Src = []byte(src)
	case []byte:
		f.Src = src
	default:
		f.Err = fmt.Errorf("%s: unsupported source type %T", filename, src)
	}

	if f.Err != nil {
		f.Src = nil
	}

	f.Lines = lineOffsets(f.Src)
	return f
}

// Line returns the source text of the given line number, without the newline.
// Lines are numbered from 1, same as Pos.Line. Out of range lines are empty.
func (f *File) Line(line int) string {
	if line < 1 || line > len(f.Lines) {
		return ""
	}

	start := f.Lines[line-1]
	end := len(f.Src)
	if line < len(f.Lines) {
		end = f.Lines[line] - 1
	} else if i := bytes.IndexByte(f.Src[start:], '\n'); i >= 0 {
		end = start + i
	}

	return string(bytes.TrimSuffix(f.Src[start:end], []byte{'\r'}))
}

// A trailing newline does not start a new line.
func lineOffsets(src []byte) []int {
	var lines []int
	for off := 0; off < len(src); {
		lines = append(lines, off)
		i := bytes.IndexByte(src[off:], '\n')
		if i < 0 {
			break
		}
		off += i + 1
	}
	return lines
}

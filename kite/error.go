package kite

import "fmt"

// Stage is the part of the pipeline an error came from.
type Stage int

const (
	ScanStage Stage = iota
	ParseStage
	CheckStage
	BuildStage
)

func (s Stage) String() string {
	switch s {
	case ScanStage:
		return "scan"
	case ParseStage:
		return "parse"
	case CheckStage:
		return "check"
	}
	return "build"
}

// Error is returned by the pipeline when a stage reports errors. The stage
// that failed is the last one that ran.
type Error struct {
	File  string
	Stage Stage
	Count int   // Number of errors reported by the stage
	Err   error // All errors joined, printed with source lines when possible
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Summary returns a one line description, eg. "main.kite: 2 parse errors".
func (e *Error) Summary() string {
	plural := "s"
	if e.Count == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s: %d %s error%s", e.File, e.Count, e.Stage, plural)
}

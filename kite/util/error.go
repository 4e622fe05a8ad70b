package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kite-lang/kite/kite/token"
)

type ErrorHandler struct {
	errs []error
}

func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

func (e *ErrorHandler) Add(err error) {
	e.errs = append(e.errs, err)
}

func (e *ErrorHandler) Errors() []error {
	return e.errs
}

func (e *ErrorHandler) Error() error {
	return errors.Join(e.errs...)
}

func (e *ErrorHandler) Pretty(line int, lineStr string, msg string, colStart int, colEnd int) {
	length := max(colEnd-colStart, 1)

	err := ""
	err += fmt.Sprintf("error: %s\n", msg)
	err += fmt.Sprintf("%3d | %s\n", line, lineStr)
	err += fmt.Sprintf("    | %s%s\n", strings.Repeat(" ", colStart), strings.Repeat("^", length))

	e.Add(fmt.Errorf("%s", err))
}

// Report adds err pointing at length characters from pos. The source line is
// printed when file is non-nil and has a line at pos, otherwise err is added
// as is.
func (e *ErrorHandler) Report(file *token.File, pos token.Pos, length int, err error) {
	if file == nil || pos.Line < 1 || pos.Line > len(file.Lines) {
		e.Add(err)
		return
	}

	col := max(pos.Col-1, 0)
	e.Pretty(pos.Line, file.Line(pos.Line), err.Error(), col, col+length)
}

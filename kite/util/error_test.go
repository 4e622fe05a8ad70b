package util

import (
	"errors"
	"strings"
	"testing"

	"github.com/kite-lang/kite/kite/token"
)

func TestPretty(t *testing.T) {
	eh := NewErrorHandler()
	eh.Pretty(3, "x := 1 + true", "type mismatch", 5, 13)

	expect := "error: type mismatch\n  3 | x := 1 + true\n    |      ^^^^^^^^\n"
	if s := eh.Error().Error(); s != expect {
		t.Errorf("expected\n%q\ngot\n%q", expect, s)
	}
}

func TestReport(t *testing.T) {
	file := token.NewFile("test.kite", "a = 1\nb = )\n")
	eh := NewErrorHandler()
	eh.Report(file, token.Pos{Line: 2, Col: 5}, 1, errors.New("2:5: mismatched parenthesis"))

	s := eh.Error().Error()
	if !strings.Contains(s, "  2 | b = )\n") {
		t.Errorf("expected source line in error, got %q", s)
	}
	if !strings.HasSuffix(s, "    |     ^\n") {
		t.Errorf("expected caret under column 5, got %q", s)
	}
}

func TestReportNoFile(t *testing.T) {
	eh := NewErrorHandler()
	err := errors.New("1:1: unclosed block")
	eh.Report(nil, token.Pos{Line: 1, Col: 1}, 1, err)

	if len(eh.Errors()) != 1 || eh.Errors()[0] != err {
		t.Errorf("expected error to be added unchanged")
	}
}

func TestAssert(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	Assert(false, "value was %d", 1)
}

package util

import (
	"errors"
	"sync"
)

// ErrorList collects errors from concurrent jobs. Nil errors are ignored.
type ErrorList struct {
	mu   sync.Mutex
	errs []error
}

func (e *ErrorList) Add(err error) {
	if err == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errs = append(e.errs, err)
}

func (e *ErrorList) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.errs)
}

func (e *ErrorList) Errors() []error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]error(nil), e.errs...)
}

func (e *ErrorList) Error() error {
	return errors.Join(e.Errors()...)
}

// Package sink provides display targets that receive the normalized byte
// count written by format.ReadableSize.
package sink

import (
	"io"
	"sync"
)

// Field is an in-memory text field. It is safe for concurrent use.
type Field struct {
	mu    sync.RWMutex
	value string
}

func (f *Field) SetValue(s string) {
	f.mu.Lock()
	f.value = s
	f.mu.Unlock()
}

func (f *Field) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Writer writes every value it receives to an io.Writer, followed by sep.
// The first write error is kept and returned by Err; later values are dropped.
type Writer struct {
	w   io.Writer
	sep string
	err error
}

func NewWriter(w io.Writer, sep string) *Writer {
	return &Writer{w: w, sep: sep}
}

func (s *Writer) SetValue(v string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, v+s.sep)
}

// Err returns the first write error, if any.
func (s *Writer) Err() error {
	return s.err
}

package client

import (
	"fmt"
	"io"
	"sync"
)

// Surface is where the controller shows its output: a result pane reserved
// for relay payloads and a status log for everything else.
type Surface interface {
	ShowResult(text string)
	ShowLog(line string)
}

// TextSurface prints the result pane and the log to writers.
type TextSurface struct {
	mu     sync.Mutex
	result io.Writer
	log    io.Writer
}

// NewTextSurface creates a surface writing results to result and log lines
// to log. The two may be the same writer.
func NewTextSurface(result, log io.Writer) *TextSurface {
	return &TextSurface{result: result, log: log}
}

// ShowResult implements Surface.
func (s *TextSurface) ShowResult(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.result, text)
}

// ShowLog implements Surface.
func (s *TextSurface) ShowLog(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.log, "» %s\n", line)
}

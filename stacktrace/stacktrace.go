package stacktrace

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const depth = 128

// skip drops runtime.Callers, Collect and the builder frames.
const skip = 4

type StackTrace struct {
	pc      []uintptr
	cause   *StackTrace
	trimmed bool
}

// Collect records the stack of the caller of the error constructor.
func Collect() *StackTrace {
	pc := [depth]uintptr{}
	return &StackTrace{
		pc: pc[:runtime.Callers(skip, pc[:])],
	}
}

// Enhance chains cause below s; frames shared with cause are printed once.
func (s *StackTrace) Enhance(cause *StackTrace) *StackTrace {
	s.cause = cause
	return s
}

// Trimmed prints base file names only.
func (s *StackTrace) Trimmed() *StackTrace {
	s.trimmed = true
	return s
}

var _ fmt.Formatter = (*StackTrace)(nil)

// Format implements fmt.Formatter.
func (s *StackTrace) Format(state fmt.State, verb rune) {
	if s == nil {
		return
	}

	if verb != 'v' && verb != 's' {
		return
	}

	pc, cropped := s.pc, 0
	if s.cause != nil {
		pc, cropped = s.own()
	}

	if len(pc) > 0 {
		root := runtime.GOROOT()
		frames := runtime.CallersFrames(pc)
		for {
			frame, more := frames.Next()
			if root == "" || !strings.Contains(frame.File, root) {
				s.writeFrame(state, frame)
			}
			if !more {
				break
			}
		}
	}

	if cropped > 0 {
		io.WriteString(state, "\n ...\n (")
		io.WriteString(state, strconv.Itoa(cropped))
		io.WriteString(state, " duplicated frames)")
	}

	if s.cause != nil {
		io.WriteString(state, "\n ---------------------------------- ")
		s.cause.Format(state, verb)
	}
}

// own strips the tail shared with the cause's stack.
func (s *StackTrace) own() ([]uintptr, int) {
	pc, sub := s.pc, s.cause.pc
	for i := 1; i <= len(pc) && i <= len(sub); i++ {
		if pc[len(pc)-i] != sub[len(sub)-i] {
			return pc[:len(pc)-i+1], i - 1
		}
	}
	return nil, len(pc)
}

func (s *StackTrace) writeFrame(w io.Writer, frame runtime.Frame) {
	file := frame.File
	if s.trimmed {
		file = filepath.Base(file)
	}

	io.WriteString(w, "\n at ")
	io.WriteString(w, frame.Function)
	io.WriteString(w, "()\n\t")
	io.WriteString(w, file)
	io.WriteString(w, ":")
	io.WriteString(w, strconv.Itoa(frame.Line))
}

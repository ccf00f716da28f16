package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad    Phase = "load"    // capture file reading and parsing
	PhaseExtract Phase = "extract" // sample extraction to disk
	PhaseInspect Phase = "inspect" // module binary inspection
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindInvalidJSON   Kind = "invalid_json"
	KindIO            Kind = "io"
	KindInvalidModule Kind = "invalid_module"
)

// Error is the structured error type used throughout the tool
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Path   string // file or directory involved, if any
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the tool's failure points

// ReadFailed reports a capture file that could not be read. A missing file
// maps to KindNotFound, anything else to KindIO.
func ReadFailed(path string, cause error) *Error {
	kind := KindIO
	if stderrors.Is(cause, fs.ErrNotExist) {
		kind = KindNotFound
	}
	return &Error{
		Phase:  PhaseLoad,
		Kind:   kind,
		Path:   path,
		Detail: "read capture",
		Cause:  cause,
	}
}

// ParseFailed reports a capture file that is not valid JSON.
func ParseFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidJSON,
		Path:   path,
		Detail: "parse capture",
		Cause:  cause,
	}
}

// MkdirFailed reports an output directory that could not be created.
func MkdirFailed(dir string, cause error) *Error {
	return &Error{
		Phase:  PhaseExtract,
		Kind:   KindIO,
		Path:   dir,
		Detail: "create output directory",
		Cause:  cause,
	}
}

// WriteFailed reports a sample file that could not be written.
func WriteFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseExtract,
		Kind:   KindIO,
		Path:   path,
		Detail: "write sample",
		Cause:  cause,
	}
}

// ModuleReadFailed reports a module binary that could not be read.
func ModuleReadFailed(path string, cause error) *Error {
	kind := KindIO
	if stderrors.Is(cause, fs.ErrNotExist) {
		kind = KindNotFound
	}
	return &Error{
		Phase:  PhaseInspect,
		Kind:   kind,
		Path:   path,
		Detail: "read module",
		Cause:  cause,
	}
}

// CompileFailed reports a module binary that wazero rejected.
func CompileFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseInspect,
		Kind:   KindInvalidModule,
		Path:   path,
		Detail: "compile module",
		Cause:  cause,
	}
}

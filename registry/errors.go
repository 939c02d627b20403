package registry

import "github.com/pkg/errors"

// Code classifies registry failures. Success is never returned as an error.
type Code int

const (
	Success Code = iota
	BufferTooSmall
	CannotOpenFile
	MemAlloc
	BadParams
	NotFound
	WrongType
	StringTooShort
	BadDataType
	AlreadyExists
	ReadOnly

	codeCount
)

// Sentinels for errors.Is
var (
	ErrBufferTooSmall error = BufferTooSmall
	ErrCannotOpenFile error = CannotOpenFile
	ErrMemAlloc       error = MemAlloc
	ErrBadParams      error = BadParams
	ErrNotFound       error = NotFound
	ErrWrongType      error = WrongType
	ErrStringTooShort error = StringTooShort
	ErrBadDataType    error = BadDataType
	ErrAlreadyExists  error = AlreadyExists
	ErrReadOnly       error = ReadOnly
)

var messages = map[Code]string{
	Success:        "Operation successful",
	BufferTooSmall: "The buffer is too small for the requested operation",
	CannotOpenFile: "Unable to open file",
	MemAlloc:       "Unable to allocate memory",
	BadParams:      "Bad parameters",
	NotFound:       "The global variable does not exist",
	WrongType:      "The global variable is of the wrong type",
	ReadOnly:       "The global variable is read-only",
	StringTooShort: "The global variable string is too short",
	BadDataType:    "The global variable has a bad data type",
	AlreadyExists:  "The global variable already exists",
}

// Lookup returns the message for c
func Lookup(c Code) string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return "Unexpected error code"
}

func (c Code) Error() string {
	return Lookup(c)
}

// CodeOf extracts the Code carried by err, possibly wrapped.
// nil maps to Success and foreign errors to BadParams.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return BadParams
}

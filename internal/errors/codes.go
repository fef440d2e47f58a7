package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeNotFound        Code = "NOT_FOUND"
	CodeAmbiguousMatch  Code = "AMBIGUOUS_MATCH"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeIllegalState    Code = "ILLEGAL_STATE"
	CodeAlreadyExists   Code = "ALREADY_EXISTS"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status reported for the code
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument:
		return 2
	case CodeNotFound:
		return 3
	case CodeAmbiguousMatch:
		return 4
	case CodeIllegalState:
		return 5
	case CodeAlreadyExists:
		return 6
	default:
		return 1
	}
}

package errors

import (
	"errors"
	"strings"
)

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMatches returns the candidate names carried by an AmbiguousMatch error
func GetMatches(err error) []string {
	matches, _ := GetMeta(err)[MetaMatches].([]string)
	return matches
}

// Describe joins the messages of every wrapped layer, outermost first,
// without the codes. It is what the command loop shows to the user.
func Describe(err error) string {
	var parts []string
	for err != nil {
		var customErr *Error
		if !errors.As(err, &customErr) {
			parts = append(parts, err.Error())
			break
		}
		if customErr.Message != "" {
			parts = append(parts, customErr.Message)
		}
		err = customErr.Cause
	}
	return strings.Join(parts, ": ")
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsAmbiguousMatch checks if an error is an ambiguous match error
func IsAmbiguousMatch(err error) bool {
	return GetCode(err) == CodeAmbiguousMatch
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsIllegalState checks if an error is an illegal state error
func IsIllegalState(err error) bool {
	return GetCode(err) == CodeIllegalState
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

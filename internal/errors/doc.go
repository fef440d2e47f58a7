// Package errors provides the coded error taxonomy used across the level manager.
//
// Every error raised by the progression model, the orchestrator and the
// snapshot repositories is an *Error carrying a Code, a short message and
// optional metadata. Callers branch on the code, never on the message.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFoundf("no skill matching %q", query)
//	err := errors.InvalidArgument("level-up takes exactly 3 attributes")
//
// Ambiguous lookups carry every candidate:
//
//	err := errors.AmbiguousMatch("multiple skills match al", []string{"Alchemy", "Alteration"})
//	errors.GetMatches(err) // [Alchemy Alteration]
//
// Wrapping errors keeps the code and adds context:
//
//	if _, err := char.IncreaseSkill(name, amount); err != nil {
//	    return errors.Wrap(err, "could not increase skill")
//	}
//
// # Error Checking
//
//	if errors.IsIllegalState(err) {
//	    // not enough major practice yet
//	}
//
//	code := errors.GetCode(err)
//	os.Exit(code.ExitCode())
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateEnum("store", cfg.Store, []string{"file", "redis", "sqlite"}, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Entities:
//   - Return NotFound, AmbiguousMatch, InvalidArgument and IllegalState
//   - Validate fully before mutating
//
// Repositories:
//   - Return NotFound and AlreadyExists with the snapshot key in metadata
//   - Wrap driver and codec errors as Internal
//
// Orchestrator and handlers:
//   - Wrap with a short user-facing context
//   - Report the message, keep the session alive
//
// # Error Codes
//
//   - NotFound: a name or snapshot matches nothing
//   - AmbiguousMatch: a name matches more than one entity
//   - InvalidArgument: wrong arity, bad number, wrong count of distinct names
//   - IllegalState: operation not allowed in the current character state
//   - AlreadyExists: a character with that name already has snapshots
//   - Internal: storage or codec failure
package errors

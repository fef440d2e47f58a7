package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/level-manager/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "no skill matching xyz",
			expected: "NOT_FOUND: no skill matching xyz",
		},
		{
			name:     "illegal state error",
			code:     errors.CodeIllegalState,
			message:  "cannot level up yet",
			expected: "ILLEGAL_STATE: cannot level up yet",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("snapshot not found").
		WithMeta("name", "Hero").
		WithMeta("level", 3)

	s.Assert().Equal("Hero", err.Meta["name"])
	s.Assert().Equal(3, err.Meta["level"])
}

func (s *ErrorsTestSuite) TestAmbiguousMatchCarriesCandidates() {
	err := errors.AmbiguousMatch("multiple skills match alt", []string{"Alteration", "Altmer"})

	s.Assert().True(errors.IsAmbiguousMatch(err))
	s.Assert().Equal([]string{"Alteration", "Altmer"}, errors.GetMatches(err))

	wrapped := errors.Wrap(err, "could not increase skill")
	s.Assert().True(errors.IsAmbiguousMatch(wrapped))
	s.Assert().Equal([]string{"Alteration", "Altmer"}, errors.GetMatches(wrapped))
	s.Assert().Nil(errors.GetMatches(errors.NotFound("nothing")))
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk full")
	wrapped := errors.Wrap(baseErr, "failed to write snapshot")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to write snapshot", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("no attribute matching xyz")
	wrapped := errors.Wrap(baseErr, "could not set plan")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("could not set plan", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("unexpected end of JSON input")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "malformed snapshot")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("malformed snapshot", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"IllegalState", func() *errors.Error { return errors.IllegalState("test") }, errors.CodeIllegalState},
		{"AlreadyExists", func() *errors.Error { return errors.AlreadyExists("test") }, errors.CodeAlreadyExists},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"AmbiguousMatch", func() *errors.Error { return errors.AmbiguousMatch("test", nil) }, errors.CodeAmbiguousMatch},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.NotFoundf("no skill matching %s", "xyz")
	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().Equal("no skill matching xyz", err.Message)

	err = errors.InvalidArgumentf("expected %d attributes, got %d", 3, 2)
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().Equal("expected 3 attributes, got 2", err.Message)

	err = errors.IllegalStatef("major practice %d below %d", 9, 10)
	s.Assert().Equal(errors.CodeIllegalState, err.Code)
	s.Assert().Equal("major practice 9 below 10", err.Message)
}

func (s *ErrorsTestSuite) TestIsHelpers() {
	notFoundErr := errors.NotFound("not found")
	illegalErr := errors.IllegalState("not yet")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.Assert().True(errors.IsNotFound(notFoundErr))
	s.Assert().True(errors.IsNotFound(wrappedErr))
	s.Assert().False(errors.IsNotFound(illegalErr))

	s.Assert().True(errors.IsIllegalState(illegalErr))
	s.Assert().False(errors.IsIllegalState(notFoundErr))
	s.Assert().True(errors.IsInternal(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestIsMatchesByCode() {
	s.Assert().ErrorIs(errors.Wrap(errors.NotFound("a"), "b"), errors.NotFound(""))
	s.Assert().NotErrorIs(errors.NotFound("a"), errors.IllegalState(""))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestDescribe() {
	err := errors.Wrap(errors.NotFoundf("no skill matching %s", "xyz"), "could not increase skill")
	s.Assert().Equal("could not increase skill: no skill matching xyz", errors.Describe(err))

	plain := errors.Wrap(fmt.Errorf("permission denied"), "failed to write snapshot")
	s.Assert().Equal("failed to write snapshot: permission denied", errors.Describe(plain))

	s.Assert().Equal("", errors.Describe(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInternal, 1},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeNotFound, 3},
		{errors.CodeAmbiguousMatch, 4},
		{errors.CodeIllegalState, 5},
		{errors.CodeAlreadyExists, 6},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.ExitCode())
		})
	}
}

package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/khoi-stripe/danddy/internal/errors"
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
			name:     "unauthorized error",
			code:     errors.CodeUnauthorized,
			message:  "session expired",
			expected: "UNAUTHORIZED: session expired",
		},
		{
			name:     "client error",
			code:     errors.CodeClientError,
			message:  "email already registered",
			expected: "CLIENT_ERROR: email already registered",
		},
		{
			name:     "network error",
			code:     errors.CodeNetworkError,
			message:  "connection refused",
			expected: "NETWORK_ERROR: connection refused",
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

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.Unauthorized("token rejected")
	wrapped := errors.Wrap(base, "failed to fetch profile")

	s.Assert().Equal(errors.CodeUnauthorized, wrapped.Code)
	s.Assert().Equal("failed to fetch profile", wrapped.Message)
	s.Assert().ErrorIs(wrapped, base)
	s.Assert().True(errors.IsUnauthorized(wrapped))
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	wrapped := errors.Wrap(fmt.Errorf("boom"), "something failed")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Contains(wrapped.Error(), "boom")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "ignored"))
}

func (s *ErrorsTestSuite) TestCodeForStatus() {
	testCases := []struct {
		status   int
		expected errors.Code
	}{
		{200, errors.CodeOK},
		{204, errors.CodeOK},
		{401, errors.CodeUnauthorized},
		{400, errors.CodeClientError},
		{404, errors.CodeClientError},
		{422, errors.CodeClientError},
		{500, errors.CodeServerError},
		{503, errors.CodeServerError},
		{301, errors.CodeDecodingError},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprintf("status %d", tc.status), func() {
			s.Assert().Equal(tc.expected, errors.CodeForStatus(tc.status))
		})
	}
}

func (s *ErrorsTestSuite) TestGetCodeAndMessage() {
	err := errors.ServerError("server error: 503")

	s.Assert().Equal(errors.CodeServerError, errors.GetCode(err))
	s.Assert().Equal("server error: 503", errors.GetMessage(err))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestTransient() {
	s.Assert().True(errors.CodeNetworkError.Transient())
	s.Assert().True(errors.CodeServerError.Transient())
	s.Assert().False(errors.CodeUnauthorized.Transient())
	s.Assert().False(errors.CodeClientError.Transient())
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "", vb)
	errors.ValidateRange("deathSaveSuccesses", 4, 0, 3, vb)
	err := vb.Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "name")
	s.Assert().Contains(err.Error(), "deathSaveSuccesses")
}

func (s *ErrorsTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "Mordai", vb)
	errors.ValidateMin("level", 1, 1, vb)

	s.Assert().NoError(vb.Build())
}

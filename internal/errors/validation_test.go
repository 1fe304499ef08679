package errors_test

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/godex/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("server.port", "is required")
	ve.AddFieldError("log.level", "is invalid")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: log.level: is invalid; server.port: is required", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 40).
		RequiredField("catalog")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "level: must be between 1 and 40")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	testCases := []struct {
		name      string
		validate  func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required present", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("key", "bulbasaur", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("key", "   ", vb) }, true},
		{"range inside", func(vb *errors.ValidationBuilder) { errors.ValidateRange("port", 50051, 1, 65535, vb) }, false},
		{"range below", func(vb *errors.ValidationBuilder) { errors.ValidateRange("port", 0, 1, 65535, vb) }, true},
		{"range above", func(vb *errors.ValidationBuilder) { errors.ValidateRange("port", 70000, 1, 65535, vb) }, true},
		{"enum allowed", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("format", "json", []string{"text", "json"}, vb) }, false},
		{"enum rejected", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("format", "xml", []string{"text", "json"}, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.validate(vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidationErrorsSurviveGRPC() {
	err := errors.NewValidationBuilder().
		RequiredField("catalog.dir").
		Field("log.format", "must be one of: text, json").
		Build()

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.InvalidArgument, st.Code())

	back := errors.FromGRPCError(grpcErr)
	fields, ok := errors.GetMeta(back)[errors.MetaValidationErrors].(map[string]any)
	s.Require().True(ok)
	s.Assert().Equal([]any{"is required"}, fields["catalog.dir"])
	s.Assert().Equal([]any{"must be one of: text, json"}, fields["log.format"])
}

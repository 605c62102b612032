// Package grpcerr converts the taskmesh error taxonomy to and from gRPC
// statuses, so a typed error raised on one node reaches the caller on
// another node unchanged. Field-level detail rides in a
// google.rpc.BadRequest detail message.
package grpcerr

import (
	"errors"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToStatus maps a taxonomy error to a gRPC status error. Unknown errors
// collapse to codes.Internal without leaking their message across the wire.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *common.ValidationError
	var conflictErr *common.ConflictError

	switch {
	case errors.As(err, &validationErr):
		st := status.New(codes.InvalidArgument, validationErr.Error())
		br := &errdetails.BadRequest{}
		for _, v := range validationErr.Violations {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: v.Message,
			})
		}
		return withDetails(st, br)

	case errors.As(err, &conflictErr):
		st := status.New(codes.AlreadyExists, conflictErr.Error())
		br := &errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: conflictErr.Field, Description: "already exists"},
			},
		}
		return withDetails(st, br)

	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())

	case errors.Is(err, common.ErrMissingToken):
		return status.Error(codes.Unauthenticated, common.ErrMissingToken.Error())

	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())

	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, common.ErrNotFound.Error())

	default:
		return status.Error(codes.Internal, common.ErrInternal.Error())
	}
}

// FromStatus is the inverse of ToStatus: it rebuilds the taxonomy error a
// remote node raised. Transport-level failures (unavailable peer, deadline)
// also land on ErrInternal; the caller only ever sees taxonomy values.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return common.ErrInternal
	}

	switch st.Code() {
	case codes.InvalidArgument:
		if br := badRequestDetail(st); br != nil {
			ve := &common.ValidationError{}
			for _, fv := range br.GetFieldViolations() {
				ve.Violations = append(ve.Violations, common.FieldViolation{
					Field:   fv.GetField(),
					Message: fv.GetDescription(),
				})
			}
			return ve
		}
		return &common.ValidationError{}

	case codes.AlreadyExists:
		if br := badRequestDetail(st); br != nil && len(br.GetFieldViolations()) > 0 {
			return &common.ConflictError{Field: br.GetFieldViolations()[0].GetField()}
		}
		return &common.ConflictError{}

	case codes.Unauthenticated:
		switch st.Message() {
		case common.ErrInvalidCredentials.Error():
			return common.ErrInvalidCredentials
		case common.ErrMissingToken.Error():
			return common.ErrMissingToken
		default:
			return common.ErrInvalidToken
		}

	case codes.NotFound:
		return common.ErrNotFound

	default:
		return common.ErrInternal
	}
}

func withDetails(st *status.Status, br *errdetails.BadRequest) error {
	detailed, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

func badRequestDetail(st *status.Status) *errdetails.BadRequest {
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br
		}
	}
	return nil
}

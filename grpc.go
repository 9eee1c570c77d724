package xerror

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// grpcCodes maps HTTP statuses to the closest gRPC code.
var grpcCodes = map[int]codes.Code{
	http.StatusBadRequest:                   codes.InvalidArgument,
	http.StatusUnauthorized:                 codes.Unauthenticated,
	http.StatusForbidden:                    codes.PermissionDenied,
	http.StatusNotFound:                     codes.NotFound,
	http.StatusConflict:                     codes.AlreadyExists,
	http.StatusPreconditionFailed:           codes.FailedPrecondition,
	http.StatusRequestedRangeNotSatisfiable: codes.OutOfRange,
	http.StatusTooManyRequests:              codes.ResourceExhausted,
	http.StatusInternalServerError:          codes.Internal,
	http.StatusNotImplemented:               codes.Unimplemented,
	http.StatusServiceUnavailable:           codes.Unavailable,
	http.StatusGatewayTimeout:               codes.DeadlineExceeded,
}

// GRPCCode returns the gRPC code for an HTTP status. Unmapped 4xx statuses
// become FailedPrecondition, unmapped 5xx statuses Internal, and anything
// else Unknown.
func GRPCCode(httpStatus int) codes.Code {
	if c, ok := grpcCodes[httpStatus]; ok {
		return c
	}
	switch {
	case httpStatus >= 400 && httpStatus < 500:
		return codes.FailedPrecondition
	case httpStatus >= 500 && httpStatus < 600:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// GRPCStatus lets status.FromError and status.Code recognise e. The code
// is derived from the HTTP status, the message is Error(), and the data
// record is attached as a structpb.Struct detail when every value is
// representable in protobuf.
func (e *Error) GRPCStatus() *status.Status {
	st := status.New(GRPCCode(e.status), e.Error())
	if len(e.data) == 0 {
		return st
	}
	detail, err := structpb.NewStruct(e.data)
	if err != nil {
		return st
	}
	withDetail, err := st.WithDetails(detail)
	if err != nil {
		return st
	}
	return withDetail
}

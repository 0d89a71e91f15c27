// Package results defines the dual success/failure payload returned by
// service operations. Handlers translate Failure payloads into failure
// events rather than transport errors; a non-nil error means the operation
// could not run at all.
package results

// OperationResult carries either a success or a failure payload.
// At most one of the two is set.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// IsSuccess reports whether the operation produced a success payload.
func (r OperationResult[S, F]) IsSuccess() bool { return r.Success != nil }

// IsFailure reports whether the operation produced a failure payload.
func (r OperationResult[S, F]) IsFailure() bool { return r.Failure != nil }

// Succeed wraps a success payload.
func Succeed[S any, F any](payload S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &payload}
}

// Fail wraps a failure payload.
func Fail[S any, F any](payload F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &payload}
}

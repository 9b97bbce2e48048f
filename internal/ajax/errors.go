// internal/ajax/errors.go
//
// Dispatch-level failures.  They are answered with HTTP 200 and a JSON body
// of the form {"error": "<message>"}; the transport considers the request
// handled even though it reports a logical problem.

package ajax

// Error is a structured dispatch failure.  It satisfies error and encodes
// directly as the response body.
type Error struct {
	Message string `json:"error"`
}

func (e *Error) Error() string { return e.Message }

var (
	ErrEmptyRequest      = &Error{Message: "Empty request!"}
	ErrUnspecifiedMethod = &Error{Message: "Unspecified method!"}
	ErrUnknownMethod     = &Error{Message: "Unknown method"}
	ErrMalformedRequest  = &Error{Message: "Malformed request!"}
)

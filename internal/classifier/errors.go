package classifier

import "errors"

var (
	// ErrNetworkUnavailable covers transport failures, timeouts and non-2xx responses.
	ErrNetworkUnavailable = errors.New("remote classifier unreachable")
	// ErrMalformedResponse covers unparsable or schema-violating model output.
	ErrMalformedResponse = errors.New("malformed remote response")
)

// RemoteClassificationError is returned for every failed remote classification.
// It wraps ErrNetworkUnavailable or ErrMalformedResponse.
type RemoteClassificationError struct {
	Err error
}

func (e *RemoteClassificationError) Error() string {
	return "remote classification failed: " + e.Err.Error()
}

func (e *RemoteClassificationError) Unwrap() error {
	return e.Err
}

package analysis

import (
	"errors"

	"github.com/spacesedan/reviewflow/internal/classifier"
)

var (
	ErrEmptyInput           = errors.New("text is required")
	ErrConfigurationMissing = errors.New("required configuration is missing")
	ErrNetworkUnavailable   = classifier.ErrNetworkUnavailable
	ErrMalformedResponse    = classifier.ErrMalformedResponse
)

type RemoteClassificationError = classifier.RemoteClassificationError

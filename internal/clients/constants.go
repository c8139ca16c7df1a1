package clients

import (
	"time"

	"github.com/spacesedan/reviewflow/internal/models"
)

const (
	MAX_RETRIES     = 3
	INITIAL_BACKOFF = 250 * time.Millisecond
	MAX_BACKOFF     = 4 * time.Second
	USER_AGENT      = "reviewflow-client/1.0 (+https://github.com/spacesedan/reviewflow)"
)

const (
	PROVIDER_GEMINI = models.PROVIDER_GEMINI
	PROVIDER_OPENAI = models.PROVIDER_OPENAI
)

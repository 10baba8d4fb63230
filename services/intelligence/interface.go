// File: services/intelligence/interface.go
package ai

import (
	"context"

	"tripwise/models"
)

// ChatModel produces one reply given a system instruction and the ordered
// transcript so far. Implementations must map provider rate-limit and
// billing failures to ErrRateLimited / ErrQuotaExhausted so callers can
// surface them as distinct outcomes.
type ChatModel interface {
	Chat(ctx context.Context, systemInstruction string, history []models.Message, userMessage string) (string, error)
}

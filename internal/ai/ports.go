package ai

import "context"

// AI — external text generation, knows nothing about Messenger or the DB
type AI interface {
	GetReply(ctx context.Context, prompt string) (string, error)
}

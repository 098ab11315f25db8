package service

import "context"

// ChatService turns a raw chat message into a reply string. It never
// returns an error: downstream failures resolve to a displayable
// apology, so the transport layer has nothing to catch.
type ChatService interface {
	Reply(ctx context.Context, message string) string
}

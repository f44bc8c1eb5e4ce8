package ai

import (
	"context"
	"fmt"

	"github.com/walkinit/storefront/internal/logging"
)

// The persona is fixed here, at configuration time; it is not part of the
// conversation API.
const stylistPersona = "You are 'SoleBot', a helpful and trendy sneaker stylist for Walkin.it. " +
	"You help users find the perfect shoes based on their outfit, occasion, or weather. " +
	"Keep answers short, fun, and use emojis."

const (
	descriptionUnavailable = "AI description unavailable (missing API key)."
	descriptionFailed      = "Error generating description."
	chatUnavailable        = "Chat unavailable (missing API key)."
	chatFailed             = "Sorry, I'm having trouble connecting to the sneaker verse right now."
)

// GenerateDescription returns marketing copy for a product, or a fixed
// fallback string. It never returns an error: failures are logged and
// resolved to the fallback.
func (c *Client) GenerateDescription(ctx context.Context, name, features string) string {
	if !c.Configured() {
		return descriptionUnavailable
	}
	if features == "" {
		features = "comfortable, stylish, durable"
	}
	prompt := fmt.Sprintf(
		"Write a punchy, 2-sentence marketing description for a sneaker named %q. Key features: %s. Tone: Urban, energetic.",
		name, features,
	)
	text, err := c.Complete(ctx, []Message{{Role: RoleUser, Content: prompt}})
	if err != nil {
		logging.FromContext(ctx).Error("generate_description_failed", "error", err)
		return descriptionFailed
	}
	return text
}

// StylistReply answers a chat turn given the prior conversation, or returns a
// fixed fallback string on any failure.
func (c *Client) StylistReply(ctx context.Context, history []Message, message string) string {
	if !c.Configured() {
		return chatUnavailable
	}
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: stylistPersona})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: RoleUser, Content: message})

	text, err := c.Complete(ctx, messages)
	if err != nil {
		logging.FromContext(ctx).Error("stylist_reply_failed", "error", err)
		return chatFailed
	}
	return text
}

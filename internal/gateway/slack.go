package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/slack-go/slack"
)

// SlackConfig holds configuration for the Slack-backed gateway
type SlackConfig struct {
	// Client is an authenticated Slack Web API client
	Client *slack.Client
}

// slackGateway implements the Gateway interface over the Slack Web API
type slackGateway struct {
	client *slack.Client
}

// NewSlack creates a new Slack-backed gateway
func NewSlack(cfg *SlackConfig) (*slackGateway, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("slack client cannot be nil")
	}

	return &slackGateway{
		client: cfg.Client,
	}, nil
}

// PostMessage posts text to a channel, threaded when the input carries a
// thread timestamp
func (g *slackGateway) PostMessage(ctx context.Context, input *PostMessageInput) (*PostMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	opts := []slack.MsgOption{
		slack.MsgOptionText(input.Text, false),
	}

	if input.ThreadTimestamp != "" {
		opts = append(opts, slack.MsgOptionTS(input.ThreadTimestamp))
	}

	// Requires the chat:write.customize scope
	if input.DisplayName != "" {
		opts = append(opts, slack.MsgOptionUsername(input.DisplayName))
	}

	channelID, timestamp, err := g.client.PostMessageContext(ctx, input.ChannelID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}

	return &PostMessageOutput{
		ChannelID: channelID,
		Timestamp: timestamp,
	}, nil
}

// SetReaction adds or removes an emoji reaction on a message
func (g *slackGateway) SetReaction(ctx context.Context, input *SetReactionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.ChannelID == "" || input.Timestamp == "" {
		return errors.New("channel ID and timestamp cannot be empty")
	}

	ref := slack.NewRefToMessage(input.ChannelID, input.Timestamp)

	if input.On {
		if err := g.client.AddReactionContext(ctx, input.Name, ref); err != nil {
			return fmt.Errorf("failed to add reaction: %w", err)
		}
		return nil
	}

	if err := g.client.RemoveReactionContext(ctx, input.Name, ref); err != nil {
		return fmt.Errorf("failed to remove reaction: %w", err)
	}

	return nil
}

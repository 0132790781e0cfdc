package slack

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Messenger is the part of the Slack API the handlers use.
type Messenger interface {
	SendMessage(channelID, message string) (string, error)
	GetBotID() string
}

type Client struct {
	api   *slack.Client
	botID string
}

func NewClient(token string) (*Client, error) {
	api := slack.New(token)

	authTest, err := api.AuthTest()
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with Slack: %w", err)
	}

	return &Client{
		api:   api,
		botID: authTest.UserID,
	}, nil
}

func (c *Client) GetBotID() string {
	return c.botID
}

// SendMessage posts plain mrkdwn text and returns the message timestamp.
func (c *Client) SendMessage(channelID, message string) (string, error) {
	_, timestamp, err := c.api.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
	)
	return timestamp, err
}

package api

import (
	"context"

	"github.com/slack-go/slack"

	"github.com/bft-labs/slackweb/pkg/transport"
)

// PostMessageRequest holds the arguments of chat.postMessage.
type PostMessageRequest struct {
	Channel     string
	Text        string
	ThreadTS    string
	Username    string
	IconEmoji   string
	UnfurlLinks bool
}

func (r PostMessageRequest) form() transport.Params {
	var p transport.Params
	p = p.Add("channel", r.Channel)
	p = p.AddIfSet("text", r.Text)
	p = p.AddIfSet("thread_ts", r.ThreadTS)
	p = p.AddIfSet("username", r.Username)
	p = p.AddIfSet("icon_emoji", r.IconEmoji)
	p = p.AddIfSet("unfurl_links", boolParam(r.UnfurlLinks))
	return p
}

// PostMessageResponse is the reply of chat.postMessage.
type PostMessageResponse struct {
	slack.SlackResponse
	Channel   string        `json:"channel"`
	Timestamp string        `json:"ts"`
	Message   slack.Message `json:"message"`
}

// ChatPostMessage calls chat.postMessage. The token travels in the
// Authorization header, not the form body.
func (c *Client) ChatPostMessage(ctx context.Context, token string, req PostMessageRequest) (*PostMessageResponse, error) {
	if req.Channel == "" {
		return nil, ErrChannelRequired
	}

	var resp PostMessageResponse
	if err := c.post(ctx, "chat.postMessage", token, req.form(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package api

import (
	"context"
	"strconv"

	"github.com/slack-go/slack"

	"github.com/bft-labs/slackweb/pkg/transport"
)

// ChannelsHistoryRequest holds the arguments of channels.history.
// Zero values are left out of the request.
type ChannelsHistoryRequest struct {
	Channel   string
	Latest    string
	Oldest    string
	Inclusive bool
	Count     int
	Unreads   bool
}

func (r ChannelsHistoryRequest) params() transport.Params {
	var p transport.Params
	p = p.Add("channel", r.Channel)
	p = p.AddIfSet("latest", r.Latest)
	p = p.AddIfSet("oldest", r.Oldest)
	p = p.AddIfSet("inclusive", boolParam(r.Inclusive))
	p = p.AddIfSet("count", intParam(r.Count))
	p = p.AddIfSet("unreads", boolParam(r.Unreads))
	return p
}

// HistoryResponse is the reply of channels.history and conversations.history.
type HistoryResponse struct {
	slack.SlackResponse
	Latest   string          `json:"latest"`
	Messages []slack.Message `json:"messages"`
	HasMore  bool            `json:"has_more"`
	PinCount int             `json:"pin_count"`
}

// NextCursor returns the cursor for the following page, if any.
func (r *HistoryResponse) NextCursor() string {
	return r.ResponseMetadata.Cursor
}

// ChannelsHistory calls the legacy channels.history method. Workspaces
// created after its retirement answer "method_deprecated"; use
// ConversationsHistory there.
func (c *Client) ChannelsHistory(ctx context.Context, token string, req ChannelsHistoryRequest) (*HistoryResponse, error) {
	if req.Channel == "" {
		return nil, ErrChannelRequired
	}

	var resp HistoryResponse
	if err := c.get(ctx, "channels.history", token, req.params(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func boolParam(b bool) string {
	if !b {
		return ""
	}
	return "true"
}

func intParam(i int) string {
	if i <= 0 {
		return ""
	}
	return strconv.Itoa(i)
}

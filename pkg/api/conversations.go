package api

import (
	"context"
	"strings"

	"github.com/slack-go/slack"

	"github.com/bft-labs/slackweb/pkg/transport"
)

// ConversationsHistoryRequest holds the arguments of conversations.history.
type ConversationsHistoryRequest struct {
	Channel   string
	Cursor    string
	Latest    string
	Oldest    string
	Inclusive bool
	Limit     int
}

func (r ConversationsHistoryRequest) params() transport.Params {
	var p transport.Params
	p = p.Add("channel", r.Channel)
	p = p.AddIfSet("cursor", r.Cursor)
	p = p.AddIfSet("latest", r.Latest)
	p = p.AddIfSet("oldest", r.Oldest)
	p = p.AddIfSet("inclusive", boolParam(r.Inclusive))
	p = p.AddIfSet("limit", intParam(r.Limit))
	return p
}

// ConversationsHistory calls conversations.history.
func (c *Client) ConversationsHistory(ctx context.Context, token string, req ConversationsHistoryRequest) (*HistoryResponse, error) {
	if req.Channel == "" {
		return nil, ErrChannelRequired
	}

	var resp HistoryResponse
	if err := c.get(ctx, "conversations.history", token, req.params(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConversationsListRequest holds the arguments of conversations.list.
type ConversationsListRequest struct {
	Cursor          string
	ExcludeArchived bool
	Limit           int
	// Types filters by conversation type: public_channel, private_channel,
	// mpim, im.
	Types []string
}

func (r ConversationsListRequest) params() transport.Params {
	var p transport.Params
	p = p.AddIfSet("cursor", r.Cursor)
	p = p.AddIfSet("exclude_archived", boolParam(r.ExcludeArchived))
	p = p.AddIfSet("limit", intParam(r.Limit))
	p = p.AddIfSet("types", strings.Join(r.Types, ","))
	return p
}

// ConversationsListResponse is the reply of conversations.list.
type ConversationsListResponse struct {
	slack.SlackResponse
	Channels []slack.Channel `json:"channels"`
}

// NextCursor returns the cursor for the following page, if any.
func (r *ConversationsListResponse) NextCursor() string {
	return r.ResponseMetadata.Cursor
}

// ConversationsList calls conversations.list.
func (c *Client) ConversationsList(ctx context.Context, token string, req ConversationsListRequest) (*ConversationsListResponse, error) {
	var resp ConversationsListResponse
	if err := c.get(ctx, "conversations.list", token, req.params(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bft-labs/slackweb/pkg/api"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		legacy bool
		limit  int
		cursor string
	)

	cmd := &cobra.Command{
		Use:   "history <channel-id>",
		Short: "Print the message history of a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			var (
				resp *api.HistoryResponse
				err  error
			)
			if legacy {
				resp, err = a.client.ChannelsHistory(ctx, a.cfg.Token, api.ChannelsHistoryRequest{
					Channel: args[0],
					Count:   limit,
				})
			} else {
				resp, err = a.client.ConversationsHistory(ctx, a.cfg.Token, api.ConversationsHistoryRequest{
					Channel: args[0],
					Limit:   limit,
					Cursor:  cursor,
				})
			}
			if err != nil {
				return err
			}

			for _, m := range resp.Messages {
				fmt.Fprintf(a.out, "%s\t%s\t%s\n", m.Timestamp, m.User, oneLine(m.Text))
			}
			fmt.Fprintf(a.out, "Got %d messages\n", len(resp.Messages))

			if next := resp.NextCursor(); next != "" {
				fmt.Fprintf(a.out, "More messages available: --cursor %s\n", next)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy", false, "use the retired channels.history method")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of messages (0 uses the Slack default)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor from a previous call (not supported with --legacy)")
	cmd.MarkFlagsMutuallyExclusive("legacy", "cursor")

	return cmd
}

func newChannelsCmd(a *app) *cobra.Command {
	var (
		limit           int
		cursor          string
		types           []string
		includeArchived bool
	)

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List conversations visible to the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			resp, err := a.client.ConversationsList(ctx, a.cfg.Token, api.ConversationsListRequest{
				Cursor:          cursor,
				ExcludeArchived: !includeArchived,
				Limit:           limit,
				Types:           types,
			})
			if err != nil {
				return err
			}

			for _, ch := range resp.Channels {
				fmt.Fprintf(a.out, "%s\t#%s\n", ch.ID, ch.Name)
			}
			fmt.Fprintf(a.out, "Got %d channels\n", len(resp.Channels))

			if next := resp.NextCursor(); next != "" {
				fmt.Fprintf(a.out, "More channels available: --cursor %s\n", next)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of channels (0 uses the Slack default)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor from a previous call")
	cmd.Flags().StringSliceVar(&types, "types", nil, "conversation types (public_channel, private_channel, mpim, im)")
	cmd.Flags().BoolVar(&includeArchived, "include-archived", false, "include archived conversations")

	return cmd
}

func newPostCmd(a *app) *cobra.Command {
	var threadTS string

	cmd := &cobra.Command{
		Use:   "post <channel-id> <text>",
		Short: "Post a message to a channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			resp, err := a.client.ChatPostMessage(ctx, a.cfg.Token, api.PostMessageRequest{
				Channel:  args[0],
				Text:     args[1],
				ThreadTS: threadTS,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Posted to %s at %s\n", resp.Channel, resp.Timestamp)
			return nil
		},
	}

	cmd.Flags().StringVar(&threadTS, "thread", "", "timestamp of the parent message to reply in a thread")

	return cmd
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// Package email implements the mailbox capability over IMAP using
// go-imap v2.
package email

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"mailscribe/internal/model"
	"mailscribe/internal/source"
)

// Client is one authenticated IMAP session. It implements source.Mailbox
// and stays connected until Close.
type Client struct {
	imap *imapclient.Client
}

// Dial connects to the account's IMAP server and authenticates. Accounts
// marked starttls get an explicit TLS upgrade on a plain connection;
// everything else dials implicit TLS. The caller is responsible for
// calling Close on the returned client.
func Dial(_ context.Context, name string, acct model.Account, password string) (*Client, error) {
	addr := net.JoinHostPort(acct.Host, strconv.Itoa(acct.Port))

	var client *imapclient.Client
	var err error

	if acct.STARTTLS {
		client, err = imapclient.DialStartTLS(addr, nil)
	} else {
		client, err = imapclient.DialTLS(addr, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to IMAP %s: %w", addr, err)
	}

	if err := client.Login(acct.User, password).Wait(); err != nil {
		_ = client.Logout().Wait()
		return nil, &source.AuthError{Account: name, Err: err}
	}

	return &Client{imap: client}, nil
}

// Select opens a folder and returns its UIDVALIDITY token.
func (c *Client) Select(folder string) (uint32, error) {
	data, err := c.imap.Select(folder, nil).Wait()
	if err != nil {
		return 0, fmt.Errorf("selecting %s: %w", folder, err)
	}
	return data.UIDValidity, nil
}

// SearchSince returns the UIDs of messages received on or after the given
// day in the selected folder.
func (c *Client) SearchSince(since time.Time) ([]uint32, error) {
	criteria := &imap.SearchCriteria{
		Since: since,
	}
	data, err := c.imap.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("searching messages since %s: %w", since.Format("02-Jan-2006"), err)
	}
	return plainUIDs(data.AllUIDs()), nil
}

// SearchAfterUID searches the UID range last+1:* in the selected folder.
func (c *Client) SearchAfterUID(last uint32) ([]uint32, error) {
	var set imap.UIDSet
	set.AddRange(imap.UID(last+1), 0)
	criteria := &imap.SearchCriteria{
		UID: []imap.UIDSet{set},
	}
	data, err := c.imap.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("searching messages after UID %d: %w", last, err)
	}
	return plainUIDs(data.AllUIDs()), nil
}

// FetchRaw fetches the full RFC 822 text of one message with BODY.PEEK so
// the message keeps its unread flag.
func (c *Client) FetchRaw(uid uint32) ([]byte, error) {
	uidSet := imap.UIDSetNum(imap.UID(uid))

	bodySection := &imap.FetchItemBodySection{
		Peek: true,
	}

	fetchOpts := &imap.FetchOptions{
		UID:         true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	}

	fetchCmd := c.imap.Fetch(uidSet, fetchOpts)
	defer fetchCmd.Close()

	msg := fetchCmd.Next()
	if msg == nil {
		return nil, fmt.Errorf("message UID %d not found", uid)
	}

	buf, err := msg.Collect()
	if err != nil {
		return nil, fmt.Errorf("collecting message data: %w", err)
	}

	raw := buf.FindBodySection(bodySection)
	if raw == nil {
		return nil, fmt.Errorf("message UID %d has no body", uid)
	}

	if err := fetchCmd.Close(); err != nil {
		return raw, fmt.Errorf("closing fetch: %w", err)
	}

	return raw, nil
}

// Close logs out of the session.
func (c *Client) Close() error {
	return c.imap.Logout().Wait()
}

func plainUIDs(uids []imap.UID) []uint32 {
	out := make([]uint32, len(uids))
	for i, uid := range uids {
		out[i] = uint32(uid)
	}
	return out
}

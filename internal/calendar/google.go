package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/teemow/meetfinder/internal/google"
	"github.com/teemow/meetfinder/internal/interval"
)

// Client wraps the Google Calendar service for free/busy lookups.
type Client struct {
	svc     *gcal.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with.
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account.
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClientForAccount creates a new Calendar client with OAuth2 authentication
// for a specific account.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w", account, err)
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:     svc,
		account: account,
	}, nil
}

// NewClient creates a new Calendar client for the default account.
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// FreeBusyInfo holds the busy intervals reported for one calendar.
type FreeBusyInfo struct {
	Calendar string
	Busy     []interval.TimeInterval
	Errors   []string
}

// QueryFreeBusy fetches busy intervals for the given calendar IDs (usually
// attendee email addresses) within [timeMin, timeMax]. Results are returned
// in the order the IDs were requested, not the API's map order, so callers
// get a deterministic sequence.
func (c *Client) QueryFreeBusy(timeMin, timeMax time.Time, calendarIDs []string) ([]FreeBusyInfo, error) {
	items := make([]*gcal.FreeBusyRequestItem, len(calendarIDs))
	for i, id := range calendarIDs {
		items[i] = &gcal.FreeBusyRequestItem{Id: id}
	}

	query := &gcal.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   items,
	}

	result, err := c.svc.Freebusy.Query(query).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query freebusy: %w", err)
	}

	infos := make([]FreeBusyInfo, 0, len(calendarIDs))
	for _, id := range calendarIDs {
		info := FreeBusyInfo{Calendar: id}

		cal, ok := result.Calendars[id]
		if !ok {
			info.Errors = append(info.Errors, "calendar not present in freebusy response")
			infos = append(infos, info)
			continue
		}

		for _, busy := range cal.Busy {
			start, serr := time.Parse(time.RFC3339, busy.Start)
			end, eerr := time.Parse(time.RFC3339, busy.End)
			if serr != nil || eerr != nil {
				info.Errors = append(info.Errors, fmt.Sprintf("unparsable busy period %q - %q", busy.Start, busy.End))
				continue
			}
			info.Busy = append(info.Busy, interval.TimeInterval{Start: start, End: end})
		}

		for _, calErr := range cal.Errors {
			info.Errors = append(info.Errors, calErr.Reason)
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// BusyMapFromFreeBusy converts free/busy query results into a BusyMap ready
// for the slot search. Calendar order follows the order of infos, and
// intervals that ended at or before now are dropped, mirroring the directory
// loader.
func BusyMapFromFreeBusy(infos []FreeBusyInfo, now time.Time) *BusyMap {
	busy := NewBusyMap()
	for _, info := range infos {
		var kept []interval.TimeInterval
		for _, iv := range info.Busy {
			if iv.EndsAfter(now) {
				kept = append(kept, iv)
			}
		}
		busy.Add(ID(info.Calendar), kept)
	}
	return busy
}

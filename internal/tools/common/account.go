package common

import "strings"

// GetAccountFromArgs extracts the account name from request arguments.
// Defaults to "default" when no account is given.
func GetAccountFromArgs(args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return "default"
}

// GetAttendeesFromArgs extracts the comma-separated attendee list from
// request arguments. Returns nil when no attendees are given.
func GetAttendeesFromArgs(args map[string]interface{}) []string {
	attendeesVal, ok := args["attendees"].(string)
	if !ok || attendeesVal == "" {
		return nil
	}

	var attendees []string
	for _, attendee := range strings.Split(attendeesVal, ",") {
		attendee = strings.TrimSpace(attendee)
		if attendee != "" {
			attendees = append(attendees, attendee)
		}
	}
	return attendees
}

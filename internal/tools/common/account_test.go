package common

import (
	"reflect"
	"testing"
)

func TestGetAccountFromArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		expected string
	}{
		{
			name:     "no account specified returns default",
			args:     map[string]interface{}{},
			expected: "default",
		},
		{
			name: "account specified returns account",
			args: map[string]interface{}{
				"account": "work",
			},
			expected: "work",
		},
		{
			name: "empty account returns default",
			args: map[string]interface{}{
				"account": "",
			},
			expected: "default",
		},
		{
			name: "account with other params",
			args: map[string]interface{}{
				"account": "personal",
				"other":   "value",
			},
			expected: "personal",
		},
		{
			name:     "nil args returns default",
			args:     nil,
			expected: "default",
		},
		{
			name: "non-string account type returns default",
			args: map[string]interface{}{
				"account": 123,
			},
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetAccountFromArgs(tt.args)
			if result != tt.expected {
				t.Errorf("GetAccountFromArgs() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetAttendeesFromArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		expected []string
	}{
		{
			name:     "no attendees returns nil",
			args:     map[string]interface{}{},
			expected: nil,
		},
		{
			name: "single attendee",
			args: map[string]interface{}{
				"attendees": "alice@example.com",
			},
			expected: []string{"alice@example.com"},
		},
		{
			name: "multiple attendees with whitespace",
			args: map[string]interface{}{
				"attendees": "alice@example.com, bob@example.com , carol@example.com",
			},
			expected: []string{"alice@example.com", "bob@example.com", "carol@example.com"},
		},
		{
			name: "empty entries dropped",
			args: map[string]interface{}{
				"attendees": "alice@example.com,,  ,bob@example.com",
			},
			expected: []string{"alice@example.com", "bob@example.com"},
		},
		{
			name: "non-string attendees returns nil",
			args: map[string]interface{}{
				"attendees": 42,
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetAttendeesFromArgs(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("GetAttendeesFromArgs() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

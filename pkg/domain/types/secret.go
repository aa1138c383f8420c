package types

import "log/slog"

type (
	// AccessToken is a repository access credential. It is write-only: it
	// travels from user input to the backend exactly once and is never kept
	// in rendered state, so every display path masks it.
	AccessToken string

	// WebhookSecret is the shared secret submitted on webhook configuration.
	WebhookSecret string

	// SessionToken is the bearer token for the backend REST API, acquired
	// at login and held by the session context.
	SessionToken string
)

func (x AccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AccessToken) String() string {
	return "***********"
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}

func (x SessionToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SessionToken) String() string {
	return "***********"
}

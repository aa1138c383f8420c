package config

import (
	"log/slog"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Backend holds the connection settings for the prediction backend API.
type Backend struct {
	baseURL      string
	userID       string
	sessionToken string
}

func (x *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Base URL of the prediction backend API",
			Category:    "Backend",
			Value:       "http://localhost:8000/api",
			Sources:     cli.EnvVars("PIPEWATCH_BACKEND_URL"),
			Destination: &x.baseURL,
		},
		&cli.StringFlag{
			Name:        "user-id",
			Usage:       "User ID owning the tracked repositories",
			Category:    "Backend",
			Sources:     cli.EnvVars("PIPEWATCH_USER_ID"),
			Destination: &x.userID,
		},
		&cli.StringFlag{
			Name:        "session-token",
			Usage:       "Bearer token for the backend API",
			Category:    "Backend",
			Sources:     cli.EnvVars("PIPEWATCH_SESSION_TOKEN"),
			Destination: &x.sessionToken,
		},
	}
}

func (x *Backend) BaseURL() string {
	return x.baseURL
}

func (x *Backend) Session() (*model.Session, error) {
	return model.NewSession(types.UserID(x.userID), types.SessionToken(x.sessionToken))
}

func (x *Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("BaseURL", x.baseURL),
		slog.Any("UserID", x.userID),
		slog.Any("SessionToken", types.SessionToken(x.sessionToken)),
	)
}

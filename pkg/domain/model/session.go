package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// Session is the explicit session context: acquired once at login,
// invalidated at logout, and passed by reference into the backend client.
// No component reads ambient token state.
type Session struct {
	UserID types.UserID
	Token  types.SessionToken `masq:"secret"`
}

func NewSession(userID types.UserID, token types.SessionToken) (*Session, error) {
	if userID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "user ID is empty")
	}
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "session token is empty")
	}
	return &Session{UserID: userID, Token: token}, nil
}

func (x *Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("UserID", string(x.UserID)),
		slog.Int("Token.len", len(x.Token)),
	)
}

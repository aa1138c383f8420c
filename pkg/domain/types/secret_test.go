package types_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

func TestSecretTypesNeverPrint(t *testing.T) {
	token := types.AccessToken("ghp_secret_value")
	secret := types.WebhookSecret("hook_secret_value")
	session := types.SessionToken("session_secret_value")

	for _, s := range []fmt.Stringer{token, secret, session} {
		gt.B(t, strings.Contains(s.String(), "secret_value")).False()
		gt.B(t, strings.Contains(fmt.Sprintf("%v", s), "secret_value")).False()
	}
}

func TestSecretTypesMaskInLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("login",
		slog.Any("token", types.AccessToken("ghp_secret_value")),
		slog.Any("session", types.SessionToken("session_secret_value")),
	)

	out := buf.String()
	gt.B(t, strings.Contains(out, "secret_value")).False()
	gt.B(t, strings.Contains(out, "***")).True()
}

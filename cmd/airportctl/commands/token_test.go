package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	out, err := runRoot(t, "token", "--user", "7", "--staff", "--secret", "dev-secret", "--ttl", "1h")
	require.NoError(t, err)

	p, err := auth.NewTokens("dev-secret", time.Hour).Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{UserID: 7, IsStaff: true}, p)
}

func TestTokenCommand_requiresUser(t *testing.T) {
	_, err := runRoot(t, "token", "--secret", "dev-secret", "--ttl", "1h")
	assert.Error(t, err)

	_, err = runRoot(t, "token", "--user", "0", "--secret", "dev-secret", "--ttl", "1h")
	assert.Error(t, err)
}

func TestRootCommand_listsSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range NewRootCmd().Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["migrate"])
	assert.True(t, names["account"])
	assert.True(t, names["token"])
}

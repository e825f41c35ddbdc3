package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kcli "github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestLogin_FirstLoginRequiresNewPassword(t *testing.T) {
	app := cli.SetupViewerCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, LoginCmd(), []string{
		"--password", "admin", "--new-password", "s3cret!", "--json",
	})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, true, data["admin"])
	assert.Equal(t, true, data["passwordChanged"])
	assert.True(t, app.Auth.IsAdmin(t.Context()))

	// The default password no longer works
	require.NoError(t, app.Auth.Logout(t.Context()))
	_, err = cli.ExecuteCLICommand(t, app, LoginCmd(), []string{"--password", "admin"})
	require.Error(t, err)
	assert.Equal(t, kcli.ExitPermission, kcli.ExitCodeFor(err))
}

func TestLogin_ShortNewPasswordKeepsViewer(t *testing.T) {
	app := cli.SetupViewerCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, LoginCmd(), []string{
		"--password", "admin", "--new-password", "abc",
	})
	require.Error(t, err)
	assert.Equal(t, kcli.ExitValidation, kcli.ExitCodeFor(err))
	assert.False(t, app.Auth.IsAdmin(t.Context()))
}

func TestLogin_AfterPasswordChange(t *testing.T) {
	app := cli.SetupCLITest(t)
	require.NoError(t, app.Auth.Logout(t.Context()))

	output, err := cli.ExecuteCLICommand(t, app, LoginCmd(), []string{"--password", testutil.AdminPassword})
	require.NoError(t, err)
	assert.Contains(t, output, "Logged in as admin")
	assert.True(t, app.Auth.IsAdmin(t.Context()))
}

func TestLogin_WrongUsername(t *testing.T) {
	app := cli.SetupCLITest(t)
	require.NoError(t, app.Auth.Logout(t.Context()))

	_, err := cli.ExecuteCLICommand(t, app, LoginCmd(), []string{"--username", "root", "--password", testutil.AdminPassword})
	require.Error(t, err)
	assert.Equal(t, kcli.ExitPermission, kcli.ExitCodeFor(err))
	assert.False(t, app.Auth.IsAdmin(t.Context()))
}

func TestLogout(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, LogoutCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Logged out")
	assert.False(t, app.Auth.IsAdmin(t.Context()))
}

func TestPasswd(t *testing.T) {
	app := cli.SetupCLITest(t)

	t.Run("wrong current password", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, PasswdCmd(), []string{"--current", "nope", "--new", "another1"})
		require.Error(t, err)
		assert.Equal(t, kcli.ExitPermission, kcli.ExitCodeFor(err))
	})

	t.Run("changes password", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, PasswdCmd(), []string{"--current", testutil.AdminPassword, "--new", "another1"})
		require.NoError(t, err)
		assert.Contains(t, output, "Password changed")

		require.NoError(t, app.Auth.Logout(t.Context()))
		_, err = app.Auth.Login(t.Context(), "admin", "another1")
		require.NoError(t, err)
		assert.True(t, app.Auth.IsAdmin(t.Context()))
	})
}

func TestStatus(t *testing.T) {
	app := cli.SetupViewerCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, StatusCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "viewer (read-only)")
	assert.Contains(t, output, "default admin password")

	testutil.LoginAdmin(t, app)
	output, err = cli.ExecuteCLICommand(t, app, StatusCmd(), []string{"--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, true, data["admin"])
}

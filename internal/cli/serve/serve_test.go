package serve

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kcli "github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestServe_StopsWhenContextEnds(t *testing.T) {
	app := cli.SetupViewerCLITest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := cli.ExecuteCLICommandWithContext(t, ctx, app, ServeCmd(), []string{"--listen", "127.0.0.1:0"})
	require.NoError(t, err)
}

func TestServe_InvalidAddress(t *testing.T) {
	app := cli.SetupViewerCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, ServeCmd(), []string{"--listen", "256.0.0.1:-1"})
	require.Error(t, err)
	assert.Equal(t, kcli.ExitError, kcli.ExitCodeFor(err))
}

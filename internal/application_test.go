package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

func freePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	return fmt.Sprint(l.Addr().(*net.TCPAddr).Port)
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Serves until canceled", func(t *testing.T) {
		// Given: a reachable redis and a free port
		mr := miniredis.RunT(t)
		host, port, err := net.SplitHostPort(mr.Addr())
		require.NoError(t, err)

		conf := &config.Config{
			HTTPPort: freePort(t),
			Redis:    config.Redis{Host: host, Port: port},
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- Run(ctx, logger, conf) }()

		// When: the server answers
		require.Eventually(t, func() bool {
			resp, err := http.Get("http://127.0.0.1:" + conf.HTTPPort + "/ping")
			if err != nil {
				return false
			}
			defer resp.Body.Close()
			return resp.StatusCode == http.StatusOK
		}, 5*time.Second, 50*time.Millisecond)

		// Then: canceling the context stops it cleanly
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("Missing redis address", func(t *testing.T) {
		err := Run(context.Background(), logger, &config.Config{})

		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}

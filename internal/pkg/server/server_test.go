package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGracefulServer_ServeAndShutdown(t *testing.T) {
	e := echo.New()
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	cleaned := false
	sm := NewShutdownManager()
	sm.Register(func(context.Context) error {
		cleaned = true
		return nil
	})

	gs := NewGracefulServer(e, models.ServerConfig{ShutdownTimeout: time.Second}, sm)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Serve(ctx, listener) }()

	url := fmt.Sprintf("http://%s/ping", listener.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.True(t, cleaned)
}

func TestShutdownManager(t *testing.T) {
	sm := NewShutdownManager()
	var order []string

	sm.Register(func(context.Context) error {
		order = append(order, "nsq")
		return nil
	})
	sm.Register(nil)
	sm.Register(func(context.Context) error {
		order = append(order, "redis")
		return errors.New("already closed")
	})
	sm.Register(func(context.Context) error {
		order = append(order, "postgres")
		return nil
	})

	failed := sm.Shutdown(context.Background())

	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"nsq", "redis", "postgres"}, order)
}

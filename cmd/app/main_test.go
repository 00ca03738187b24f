package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/forest-watch/internal/bootstrap"
	"github.com/yanqian/forest-watch/internal/domain/forest"
	"github.com/yanqian/forest-watch/internal/infra/config"
)

func TestRunWiringFailure(t *testing.T) {
	code := run(context.Background(), func() (*bootstrap.App, func(), error) {
		return nil, nil, errors.New("catalog entry 3: duplicate id")
	})
	require.Equal(t, 1, code)
}

func TestRunServerFailureExitsNonZero(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cleaned := false
	code := run(context.Background(), func() (*bootstrap.App, func(), error) {
		return newTestApp(occupied.Addr().String()), func() { cleaned = true }, nil
	})
	require.Equal(t, 1, code)
	require.True(t, cleaned)
}

func TestRunShutdownExitsZero(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	cleaned := false
	code := run(ctx, func() (*bootstrap.App, func(), error) {
		return newTestApp("127.0.0.1:0"), func() { cleaned = true }, nil
	})
	require.Equal(t, 0, code)
	require.True(t, cleaned)
}

func newTestApp(addr string) *bootstrap.App {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: addr}}
	logger := discardLogger()
	svc := forest.NewService(forest.Config{}, forest.Catalog{}, nil, logger)
	server := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
	return bootstrap.NewApp(cfg, logger, server, svc)
}

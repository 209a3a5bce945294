// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/focus-on-it/internal/config"
	"github.com/MKhiriev/focus-on-it/internal/handler"
	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/mock"
	"github.com/MKhiriev/focus-on-it/internal/service"
	"github.com/MKhiriev/focus-on-it/models"
)

type fakeHub struct {
	closed atomic.Int32
}

func (h *fakeHub) Close() { h.closed.Add(1) }

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	ctrl := gomock.NewController(t)

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0"}).AnyTimes()

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, nil, cfg, logger.Nop())
	require.NoError(t, err)

	return handlers
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := config.Server{HTTPAddress: taken.Addr().String()}
	_, err = NewServer(newTestHandlers(t, cfg), nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrListen)
}

func TestRunServer_ServesAndShutsDown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	hub := &fakeHub{}

	srv, err := NewServer(newTestHandlers(t, cfg), hub, cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	require.Len(t, s.transports, 2)
	httpAddr := s.transports[0].(*httpServer).listener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	var version models.VersionResponse
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + httpAddr + "/api/version/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK && json.NewDecoder(resp.Body).Decode(&version) == nil
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "1.0.0", version.Version)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, int32(1), hub.closed.Load())

	_, err = http.Get("http://" + httpAddr + "/api/version/")
	assert.Error(t, err)
}

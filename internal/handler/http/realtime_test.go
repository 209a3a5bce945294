// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/focus-on-it/models"
)

func dialRealtime(t *testing.T, srv *httptest.Server, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/realtime/"
	return websocket.DefaultDialer.Dial(url, header)
}

func TestRealtime_StreamsUserChanges(t *testing.T) {
	h, ts := newTestHandler(t)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	conn, resp, err := dialRealtime(t, srv, testToken)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.Eventually(t, func() bool { return ts.hub.Subscribers(testUserID) == 1 }, time.Second, 10*time.Millisecond)

	ts.hub.Publish(models.ChangeMessage{Collection: models.CollectionTasks, Kind: models.ChangeDelete, ID: "other", UserID: testUserID + 1})
	insert, err := models.NewChangeMessage(models.CollectionTasks, models.ChangeInsert, testUserID, testID, models.Task{ID: testID, Title: "Read"})
	require.NoError(t, err)
	ts.hub.Publish(insert)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var got models.ChangeMessage
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, models.CollectionTasks, got.Collection)
	assert.Equal(t, models.ChangeInsert, got.Kind)
	assert.Equal(t, testID, got.ID)
	assert.JSONEq(t, string(insert.Record), string(got.Record))
}

func TestRealtime_HubShutdownClosesFeed(t *testing.T) {
	h, ts := newTestHandler(t)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	conn, _, err := dialRealtime(t, srv, testToken)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return ts.hub.Subscribers(testUserID) == 1 }, time.Second, 10*time.Millisecond)
	ts.hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseTryAgainLater), "unexpected error: %v", err)
}

func TestRealtime_ClientCloseUnsubscribes(t *testing.T) {
	h, ts := newTestHandler(t)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	conn, _, err := dialRealtime(t, srv, testToken)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return ts.hub.Subscribers(testUserID) == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return ts.hub.Subscribers(testUserID) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestRealtime_Rejections(t *testing.T) {
	h, ts := newTestHandler(t)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	_, resp, err := dialRealtime(t, srv, "")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	ts.hub.Close()
	_, resp, err = dialRealtime(t, srv, testToken)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRealtime_Ping(t *testing.T) {
	h, _ := newTestHandler(t)
	h.pingInterval = 20 * time.Millisecond
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	conn, _, err := dialRealtime(t, srv, testToken)
	require.NoError(t, err)
	defer conn.Close()

	pinged := make(chan struct{}, 1)
	conn.SetPingHandler(func(string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	})

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case <-pinged:
	case <-time.After(2 * time.Second):
		t.Fatal("no ping received")
	}
}

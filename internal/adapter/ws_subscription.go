// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/models"
)

// IdleTimeout is how long the feed waits for a message or a ping before it
// treats the connection as dropped.
const IdleTimeout = 90 * time.Second

type wsChangeFeed struct {
	conn     *websocket.Conn
	messages chan models.ChangeMessage
	done     chan struct{}
	once     sync.Once

	logger *logger.Logger
}

// dialChangeFeed opens the websocket at httpURL, switching the scheme to
// ws or wss.
func dialChangeFeed(ctx context.Context, httpURL, token string, handshakeTimeout time.Duration, log *logger.Logger) (ChangeFeed, error) {
	wsURL := "ws" + strings.TrimPrefix(httpURL, "http")

	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: handshakeTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			if statusErr := mapStatus(resp.StatusCode, ""); statusErr != nil {
				return nil, fmt.Errorf("dial change feed: %w", statusErr)
			}
		}
		return nil, fmt.Errorf("dial change feed: %w", err)
	}

	feed := &wsChangeFeed{
		conn:     conn,
		messages: make(chan models.ChangeMessage),
		done:     make(chan struct{}),
		logger:   log,
	}

	_ = conn.SetReadDeadline(time.Now().Add(IdleTimeout))
	conn.SetPingHandler(func(data string) error {
		_ = conn.SetReadDeadline(time.Now().Add(IdleTimeout))
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second))
	})

	go feed.readLoop()

	return feed, nil
}

func (f *wsChangeFeed) Messages() <-chan models.ChangeMessage {
	return f.messages
}

// Close sends a close frame and tears the connection down. Messages is
// closed once the read loop exits. Closing a feed the server already dropped
// is not an error.
func (f *wsChangeFeed) Close() error {
	var err error
	f.once.Do(func() {
		close(f.done)
		_ = f.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		if err = f.conn.Close(); errors.Is(err, net.ErrClosed) {
			err = nil
		}
	})

	return err
}

func (f *wsChangeFeed) readLoop() {
	defer close(f.messages)
	defer f.conn.Close()

	for {
		var msg models.ChangeMessage
		if err := f.conn.ReadJSON(&msg); err != nil {
			select {
			case <-f.done:
			default:
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					f.logger.Warn().Err(err).Str("func", "wsChangeFeed.readLoop").Msg("change feed dropped")
				}
			}
			return
		}
		_ = f.conn.SetReadDeadline(time.Now().Add(IdleTimeout))

		select {
		case f.messages <- msg:
		case <-f.done:
			return
		}
	}
}

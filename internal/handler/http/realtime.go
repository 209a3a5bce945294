// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/focus-on-it/internal/logger"
)

// realtime upgrades the request to a websocket and streams the change
// messages of the authenticated user. Messages from the client are read and
// discarded so that close frames and pongs are processed.
//
// The connection is closed with CloseTryAgainLater when the hub drops the
// subscriber, which makes the client refetch and resubscribe.
func (h *Handler) realtime(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.realtime", err)
		return
	}

	sub, err := h.services.ChangeHub.Subscribe(userID)
	if err != nil {
		writeError(w, r, "*Handler.realtime", err)
		return
	}
	defer sub.Close()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.realtime").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log.Debug().Int64("user_id", userID).Msg("realtime feed opened")

	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-sub.Events():
			if !ok {
				log.Info().Int64("user_id", userID).Msg("realtime subscriber dropped")
				closeFrame := websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "subscription dropped")
				_ = conn.WriteControl(websocket.CloseMessage, closeFrame, time.Now().Add(writeWait))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err = conn.WriteJSON(msg); err != nil {
				log.Warn().Err(err).Int64("user_id", userID).Msg("realtime write failed")
				return
			}

		case <-ticker.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug().Err(err).Int64("user_id", userID).Msg("realtime ping failed")
				return
			}

		case <-clientGone:
			log.Debug().Int64("user_id", userID).Msg("realtime feed closed by client")
			return
		}
	}
}

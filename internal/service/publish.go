// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/models"
)

// publish announces a committed change. The write already succeeded, so a
// failure to encode the record is logged and otherwise ignored: subscribers
// catch up on their next refresh.
func publish(ctx context.Context, feed ChangeHub, collection models.Collection, kind models.ChangeKind, userID int64, id string, record any) {
	if feed == nil {
		return
	}

	msg, err := models.NewChangeMessage(collection, kind, userID, id, record)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "publish").
			Str("collection", string(collection)).
			Str("kind", string(kind)).
			Str("id", id).
			Msg(ErrPublishingChange.Error())
		return
	}

	feed.Publish(msg)
}

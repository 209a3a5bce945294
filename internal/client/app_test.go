// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/focus-on-it/internal/logger"
)

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type fakeServices struct {
	rec      *recorder
	loadErr  error
	closeErr error
}

func (f *fakeServices) Load(ctx context.Context) error {
	f.rec.add("load")
	return f.loadErr
}

func (f *fakeServices) Close() error {
	f.rec.add("close")
	return f.closeErr
}

type fakeUI struct {
	rec *recorder
	err error
}

func (f *fakeUI) MainLoop(ctx context.Context) error {
	f.rec.add("ui")
	return f.err
}

type fakeWorkers struct {
	rec *recorder
}

func (f *fakeWorkers) Start(context.Context) { f.rec.add("workers start") }
func (f *fakeWorkers) Stop()                 { f.rec.add("workers stop") }

func TestNewApp_RequiresDependencies(t *testing.T) {
	rec := &recorder{}

	_, err := NewApp(nil, &fakeUI{rec: rec}, &fakeWorkers{rec: rec}, logger.Nop())
	assert.ErrorIs(t, err, ErrAppNotConfigured)

	_, err = NewApp(&fakeServices{rec: rec}, nil, &fakeWorkers{rec: rec}, logger.Nop())
	assert.ErrorIs(t, err, ErrAppNotConfigured)

	_, err = NewApp(&fakeServices{rec: rec}, &fakeUI{rec: rec}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrAppNotConfigured)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name     string
		loadErr  error
		uiErr    error
		closeErr error
		wantErr  error
	}{
		{name: "clean exit"},
		{name: "load failure is not fatal", loadErr: errors.New("server down")},
		{name: "ui error", uiErr: errors.New("no tty"), wantErr: errors.New("no tty")},
		{name: "close error", closeErr: errors.New("feed close"), wantErr: errors.New("feed close")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			app, err := NewApp(
				&fakeServices{rec: rec, loadErr: tt.loadErr, closeErr: tt.closeErr},
				&fakeUI{rec: rec, err: tt.uiErr},
				&fakeWorkers{rec: rec},
				logger.Nop(),
			)
			require.NoError(t, err)

			err = app.Run(context.Background())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}

			events := rec.list()
			assert.Contains(t, events, "load")
			assert.Equal(t, []string{"workers stop", "close"}, events[len(events)-2:])
			assert.Less(t, indexOf(events, "workers start"), indexOf(events, "ui"))
		})
	}
}

func indexOf(events []string, e string) int {
	for i, v := range events {
		if v == e {
			return i
		}
	}
	return -1
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/focus-on-it/internal/config"
	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/utils"
	"github.com/MKhiriev/focus-on-it/models"
)

const (
	tasksPath    = "/api/tasks/"
	sessionsPath = "/api/sessions/"
	statsPath    = "/api/stats/"
	versionPath  = "/api/version/"
	realtimePath = "/api/realtime/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	baseURL          string
	token            string
	handshakeTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises and validates cfg.HTTPAddress and configures the underlying
// resty client with the resolved base URL, the bearer token and the request
// timeout.
//
// Returns [ErrInvalidAddress] (wrapped) if the address is empty or cannot be
// parsed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client:           utils.NewHTTPClient(baseURL, cfg.Token, cfg.RequestTimeout),
		baseURL:          baseURL,
		token:            strings.TrimSpace(cfg.Token),
		handshakeTimeout: cfg.RequestTimeout,
		logger:           log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = utils.NormalizeBaseURL(strings.TrimSpace(raw))
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) ListTasks(ctx context.Context) ([]models.Task, error) {
	var result models.TasksResponse
	if err := h.get(ctx, tasksPath, &result); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return result.Tasks, nil
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, task models.NewTask) (models.Task, error) {
	var created models.Task
	if err := h.send(ctx, resty.MethodPost, tasksPath, task, &created); err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	var updated models.Task
	if err := h.send(ctx, resty.MethodPatch, tasksPath+url.PathEscape(id), patch, &updated); err != nil {
		return models.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, id string) error {
	if err := h.send(ctx, resty.MethodDelete, tasksPath+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}

	return nil
}

func (h *httpServerAdapter) ListSessions(ctx context.Context) ([]models.TimerSession, error) {
	var result models.SessionsResponse
	if err := h.get(ctx, sessionsPath, &result); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return result.Sessions, nil
}

func (h *httpServerAdapter) CreateSession(ctx context.Context, session models.NewTimerSession) (models.TimerSession, error) {
	var created models.TimerSession
	if err := h.send(ctx, resty.MethodPost, sessionsPath, session, &created); err != nil {
		return models.TimerSession{}, fmt.Errorf("create session: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateSession(ctx context.Context, id string, patch models.SessionPatch) (models.TimerSession, error) {
	var updated models.TimerSession
	if err := h.send(ctx, resty.MethodPatch, sessionsPath+url.PathEscape(id), patch, &updated); err != nil {
		return models.TimerSession{}, fmt.Errorf("update session %s: %w", id, err)
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteSession(ctx context.Context, id string) error {
	if err := h.send(ctx, resty.MethodDelete, sessionsPath+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}

	return nil
}

// GetStats implements [ServerAdapter]. Zero bounds are not sent.
func (h *httpServerAdapter) GetStats(ctx context.Context, req models.StatsRequest) (models.Stats, error) {
	var stats models.Stats

	r := h.client.R().SetContext(ctx).SetResult(&stats)
	if !req.From.IsZero() {
		r.SetQueryParam("from", req.From.UTC().Format(time.RFC3339))
	}
	if !req.To.IsZero() {
		r.SetQueryParam("to", req.To.UTC().Format(time.RFC3339))
	}

	resp, err := r.Get(statsPath)
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Stats{}, fmt.Errorf("stats request: %w", err)
	}

	return stats, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	if err := h.get(ctx, versionPath, &version); err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}

	return version, nil
}

// Subscribe implements [ServerAdapter] by dialing the websocket endpoint.
func (h *httpServerAdapter) Subscribe(ctx context.Context) (ChangeFeed, error) {
	return dialChangeFeed(ctx, h.baseURL+realtimePath, h.token, h.handshakeTimeout, h.logger)
}

func (h *httpServerAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}

	return mapHTTPError(resp)
}

// send issues a JSON request. A nil body sends none; a nil result ignores
// the response body.
func (h *httpServerAdapter) send(ctx context.Context, method, path string, body, result any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return err
	}

	return mapHTTPError(resp)
}

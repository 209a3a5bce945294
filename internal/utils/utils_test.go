// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDContext(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")
	_, ok = GetUserIDFromContext(ctx)
	assert.False(t, ok, "a string user id must be rejected")

	userID, ok := GetUserIDFromContext(WithUserID(context.Background(), 42))
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestTraceIDContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "trace-1", traceID)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, rec.Body.Len(), n)
}

func TestWriteJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReadJSON(t *testing.T) {
	var v struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"write tests"}`))
	require.NoError(t, ReadJSON(req, &v))
	assert.Equal(t, "write tests", v.Title)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x","color":"red"}`))
	assert.Error(t, ReadJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, ReadJSON(req, &v))
}

func TestNewHTTPClient(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/", "secret", time.Second)
	require.NotNil(t, client.Client)

	resp, err := client.R().Get("/api/version/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "Bearer secret", gotAuth)

	assert.NotSame(t, NewHTTPClient("", "", time.Second).Client, client.Client)
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", NormalizeBaseURL("localhost:8080"))
	assert.Equal(t, "https://focus.example", NormalizeBaseURL("https://focus.example/"))
	assert.Equal(t, "", NormalizeBaseURL(""))
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestGenerateAndValidateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("focus", 123, time.Hour, "key")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "focus")
	require.NoError(t, err)
	assert.Equal(t, int64(123), parsed.UserID)
	assert.Equal(t, token.SignedString, parsed.String())

	userID, err := ParseUserIDFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(123), userID)
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("focus", 1, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(valid.SignedString, "other-key", "focus")
	assert.Error(t, err, "wrong key")

	_, err = ValidateAndParseJWTToken(valid.SignedString, "key", "someone-else")
	assert.Error(t, err, "wrong issuer")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "focus",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredString, err := expired.SignedString([]byte("key"))
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(expiredString, "key", "focus")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{Issuer: "focus"})
	noSubjectString, err := noSubject.SignedString([]byte("key"))
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(noSubjectString, "key", "focus")
	assert.Error(t, err)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(header)
		assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader, header)
	}
}

func TestParseUserIDFromJWT_Garbage(t *testing.T) {
	_, err := ParseUserIDFromJWT("not-a-token")
	assert.Error(t, err)
}

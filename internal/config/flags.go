// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and a port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command line into a config.
//
// Flags:
//
//	-a               HTTP address host:port (server listen, client target)
//	-grpc-address    gRPC health address host:port
//	-d               database DSN
//	-driver          database driver: postgres or sqlite3
//	-c, -config      JSON config file path
//	-token-sign-key  token signing key
//	-token-issuer    token issuer
//	-token-duration  token lifetime, e.g. 24h
//	-token           bearer token of the client
//	-request-timeout request timeout, e.g. 15s
//	-write-timeout   client write timeout, e.g. 10s
//	-resubscribe     client resubscribe interval, e.g. 5s
//	-log-file        client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("focus-on-it", flag.ContinueOnError)

	var (
		httpAddress, grpcAddress NetAddress
		databaseDSN, driver      string
		jsonConfigPath           string
		tokenSignKey             string
		tokenIssuer              string
		tokenDuration            time.Duration
		token                    string
		requestTimeout           time.Duration
		writeTimeout             time.Duration
		resubscribeInterval      time.Duration
		logFile                  string
	)

	fs.Var(&httpAddress, "a", "HTTP address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (postgres, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.StringVar(&token, "token", "", "Bearer token of the client")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Client write timeout (e.g., 10s)")
	fs.DurationVar(&resubscribeInterval, "resubscribe", 0, "Client resubscribe interval (e.g., 5s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			Token:         token,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN, Driver: driver},
		},
		Server: Server{
			HTTPAddress:    httpAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress.String(),
			RequestTimeout: requestTimeout,
			WriteTimeout:   writeTimeout,
		},
		Workers:      Workers{ResubscribeInterval: resubscribeInterval},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

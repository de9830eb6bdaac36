// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseClientFlags parses the client configuration flags from args and
// returns the positional arguments (the one-shot command) left after them.
//
// Flags:
//
//	-a remote service base address (e.g. "http://localhost:8100")
//	-token-path path of the token endpoint
//	-request-timeout transport timeout of a single request
//	-max-retries number of retries after the first attempt
//	-base-delay delay before the first retry
//	-max-delay cap of the pre-jitter delay
//	-jitter multiplicative jitter factor in [0, 1)
//	-seed-token token placed in the cache at start-up
//	-log-file client log file path
//	-c/-config json file path with configs
func parseClientFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("token-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var adapterAddress string
	var tokenPath string
	var requestTimeout time.Duration
	var maxRetries int
	var baseDelay, maxDelay time.Duration
	var jitter float64
	var seedToken string
	var logFile string
	var jsonConfigPath string

	fs.StringVar(&adapterAddress, "a", "", "Remote service base address")
	fs.StringVar(&tokenPath, "token-path", "", "Token endpoint path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.IntVar(&maxRetries, "max-retries", 0, "Retries after the first attempt")
	fs.DurationVar(&baseDelay, "base-delay", 0, "Delay before the first retry (e.g., 2s)")
	fs.DurationVar(&maxDelay, "max-delay", 0, "Maximum pre-jitter delay (e.g., 30s)")
	fs.Float64Var(&jitter, "jitter", 0, "Jitter factor in [0, 1)")
	fs.StringVar(&seedToken, "seed-token", "", "Token placed in the cache at start-up")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	var explicit explicitValues
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-retries":
			explicit.maxRetries = true
		case "jitter":
			explicit.jitterFactor = true
		}
	})

	return &StructuredConfig{
		App: App{
			SeedToken: seedToken,
			LogFile:   logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			TokenPath:      tokenPath,
		},
		Retry: Retry{
			MaxRetries:   maxRetries,
			BaseDelay:    baseDelay,
			MaxDelay:     maxDelay,
			JitterFactor: jitter,
		},
		JSONFilePath: jsonConfigPath,
		explicit:     explicit,
	}, fs.Args(), nil
}

// parseServerFlags parses the stub server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout
//	-static-token token returned when no sign key is set
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-c/-config json file path with configs
func parseServerFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("token-stub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var requestTimeout time.Duration
	var staticToken string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&staticToken, "static-token", "", "Static token")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &StructuredConfig{
		Auth: Auth{
			StaticToken:   staticToken,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Otherwise the host must be "localhost"
// or a valid IP address.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding. Durations
// are accepted either as strings ("2s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		SeedToken string `json:"seed_token"`
		LogFile   string `json:"log_file"`
	} `json:"app,omitempty"`

	Auth struct {
		StaticToken   string   `json:"static_token"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TokenPath      string   `json:"token_path"`
	} `json:"adapter,omitempty"`

	Retry struct {
		MaxRetries   *int     `json:"max_retries,omitempty"`
		BaseDelay    Duration `json:"base_delay"`
		MaxDelay     Duration `json:"max_delay"`
		JitterFactor *float64 `json:"jitter_factor,omitempty"`
	} `json:"retry,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SeedToken: jsonCfg.App.SeedToken,
			LogFile:   jsonCfg.App.LogFile,
		},
		Auth: Auth{
			StaticToken:   jsonCfg.Auth.StaticToken,
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			TokenPath:      jsonCfg.Adapter.TokenPath,
		},
		Retry: Retry{
			BaseDelay: time.Duration(jsonCfg.Retry.BaseDelay),
			MaxDelay:  time.Duration(jsonCfg.Retry.MaxDelay),
		},
	}

	if v := jsonCfg.Retry.MaxRetries; v != nil {
		cfg.Retry.MaxRetries = *v
		cfg.explicit.maxRetries = true
	}
	if v := jsonCfg.Retry.JitterFactor; v != nil {
		cfg.Retry.JitterFactor = *v
		cfg.explicit.jitterFactor = true
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

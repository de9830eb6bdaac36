// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-token-client/internal/adapter"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"golang.org/x/sync/singleflight"
)

// tokenCache is the process-wide holder of the bearer token.
//
// mu guards token and generation. It is never held while the token endpoint
// is being called; fetches are collapsed per generation by group, and a
// fetch only stores its result if no Invalidate happened since it started.
type tokenCache struct {
	fetcher adapter.TokenFetcher

	mu         sync.RWMutex
	token      string
	generation uint64

	group singleflight.Group

	logger *logger.Logger
}

// NewTokenCache returns a cache backed by fetcher. A non-empty seed is held
// as the initial token; otherwise the cache starts empty.
func NewTokenCache(fetcher adapter.TokenFetcher, seed string, logger *logger.Logger) TokenCache {
	return &tokenCache{
		fetcher: fetcher,
		token:   seed,
		logger:  logger,
	}
}

func (c *tokenCache) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	token, gen := c.token, c.generation
	c.mu.RUnlock()

	if token != "" {
		return token, nil
	}

	// The shared fetch must not be cancelled by whichever caller happened to
	// start it; the transport timeout bounds it instead.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(strconv.FormatUint(gen, 10), func() (any, error) {
		return c.fetch(fetchCtx, gen)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", &adapter.RequestError{Kind: adapter.KindTokenFetch, Err: ctx.Err()}
	}
}

func (c *tokenCache) fetch(ctx context.Context, gen uint64) (string, error) {
	c.logger.Debug().Uint64("generation", gen).Msg("fetching token")

	token, err := c.fetcher.FetchToken(ctx)
	if err != nil {
		if !errors.Is(err, adapter.ErrTokenFetch) {
			err = &adapter.RequestError{Kind: adapter.KindTokenFetch, Err: err}
		}
		c.logger.Err(err).Uint64("generation", gen).Msg("token fetch failed")
		return "", err
	}

	c.mu.Lock()
	stored := c.generation == gen
	if stored {
		c.token = token
	}
	c.mu.Unlock()

	if stored {
		c.logger.Info().Uint64("generation", gen).Msg("token cached")
	} else {
		c.logger.Debug().Uint64("generation", gen).Msg("token invalidated during fetch, not cached")
	}

	return token, nil
}

func (c *tokenCache) Invalidate() {
	c.mu.Lock()
	had := c.token != ""
	c.token = ""
	c.generation++
	c.mu.Unlock()

	c.logger.Info().Bool("had_token", had).Msg("token invalidated")
}

func (c *tokenCache) Cached() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token != ""
}

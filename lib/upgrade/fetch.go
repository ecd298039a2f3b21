// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package upgrade

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

var ErrDownload = errors.New("cannot download runtime")

const (
	defaultAttempts     = 3
	defaultRetryDelay   = 500 * time.Millisecond
	defaultFetchTimeout = 2 * time.Minute
)

// Fetcher reads runtime blobs from files or http(s) URLs.
type Fetcher struct {
	client   *http.Client
	attempts uint
	delay    time.Duration
	timeout  time.Duration
}

// NewFetcher returns a fetcher using client for downloads. Each download
// is attempted up to three times, each attempt bounded by timeout.
func NewFetcher(client *http.Client, timeout time.Duration) *Fetcher {
	if timeout == 0 {
		timeout = defaultFetchTimeout
	}
	return &Fetcher{
		client:   client,
		attempts: defaultAttempts,
		delay:    defaultRetryDelay,
		timeout:  timeout,
	}
}

// Fetch returns the content at source, a file path or an http(s) URL.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	return retry.DoWithData(func() ([]byte, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
		defer cancel()
		return f.download(attemptCtx, source)
	},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Warnf("download attempt %d of %s failed: %s", attempt+1, source, err)
		}),
	)
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}

	response, err := f.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDownload, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		err = fmt.Errorf("%w: %s: %s", ErrDownload, url, response.Status)
		if response.StatusCode < http.StatusInternalServerError {
			return nil, retry.Unrecoverable(err)
		}
		return nil, err
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %s", ErrDownload, err)
	}
	return body, nil
}

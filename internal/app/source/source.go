// Package source loads HAR capture data from local files or http(s)
// URLs.
package source

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const fetchAttempts = 3

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load reads one capture source. A ref starting with http:// or https://
// is fetched over the network with retries; anything else is treated as
// a file path.
func Load(ctx context.Context, ref string) ([]byte, error) {
	if IsRemote(ref) {
		return fetch(ctx, ref)
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, errors.Wrapf(err, "read capture file %s", ref)
	}
	log.Infof("read %s from %s", humanize.Bytes(uint64(len(data))), ref)
	return data, nil
}

// IsRemote reports whether ref is an http(s) URL rather than a file path.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	data, err := retry.DoWithData(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, retry.Unrecoverable(err)
		}

		res, err := httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			err := errors.Errorf("unexpected status %d", res.StatusCode)
			if res.StatusCode >= 400 && res.StatusCode < 500 {
				return nil, retry.Unrecoverable(err)
			}
			return nil, err
		}
		return io.ReadAll(res.Body)
	}, retry.Attempts(fetchAttempts), retry.Context(ctx), retry.OnRetry(func(n uint, err error) {
		log.Warnf("fetch %s attempt %d failed: %s", url, n+1, err)
	}))
	if err != nil {
		return nil, errors.Wrapf(err, "fetch capture from %s", url)
	}

	log.Infof("fetched %s from %s", humanize.Bytes(uint64(len(data))), url)
	return data, nil
}

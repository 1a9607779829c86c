package crawler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "scrape:"

// CachedFetcher keeps scraped pages in Redis so re-imports of an unchanged
// URL do not spend fetch credits. Cache failures never fail a fetch.
type CachedFetcher struct {
	Next   Fetcher
	Client *redis.Client
	TTL    time.Duration
	Logger *logrus.Entry
}

func (c *CachedFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	key := cacheKeyPrefix + url
	log := c.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("cache_key", key)

	val, err := c.Client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var page Page
		if jsonErr := json.Unmarshal([]byte(val), &page); jsonErr == nil {
			log.Debug("scrape cache hit")
			return &page, nil
		}
		log.Warn("discarding unreadable cache entry")
	case errors.Is(err, redis.Nil):
	default:
		log.WithError(err).Warn("scrape cache read failed")
	}

	page, err := c.Next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(page)
	if err == nil {
		err = c.Client.Set(ctx, key, b, c.TTL).Err()
	}
	if err != nil {
		log.WithError(err).Warn("scrape cache write failed")
	}
	return page, nil
}

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techfolio/api/internal/model"
)

// New returns a Redis client for the given address.
func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// ProfileCache holds the singleton techfolio profile under a fixed key.
// Nothing in this service writes the profile, so a short TTL is the only
// invalidation.
type ProfileCache struct{ R *redis.Client }

const (
	profileKey = "techfolio:profile"
	profileTTL = 5 * time.Minute
)

func (c *ProfileCache) Get(ctx context.Context) (*model.Profile, error) {
	b, err := c.R.Get(ctx, profileKey).Bytes()
	if err != nil {
		return nil, err
	}
	var p model.Profile
	return &p, json.Unmarshal(b, &p)
}

func (c *ProfileCache) Set(ctx context.Context, p *model.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.R.Set(ctx, profileKey, b, profileTTL).Err()
}

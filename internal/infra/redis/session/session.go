package infra_session_cache

import (
	"time"

	"github.com/go-redis/redis"
)

// Driver is a namespaced token store. Missing keys read back as empty
// strings; the auth service treats those as unknown tokens.
type Driver struct {
	client *redis.Client
	prefix string
}

func New(
	client *redis.Client,
	prefix string,
) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
	}
}

func (d *Driver) Set(key string, value string, ttl time.Duration) error {
	return d.client.Set(d.fullKey(key), value, ttl).Err()
}

func (d *Driver) Get(key string) (string, error) {
	val, err := d.client.Get(d.fullKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}

	return val, nil
}

func (d *Driver) Del(key string) error {
	return d.client.Del(d.fullKey(key)).Err()
}

func (d *Driver) fullKey(key string) string {
	if d.prefix != "" {
		return d.prefix + ":" + key
	}
	return key
}

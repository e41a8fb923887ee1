package httpapi

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	tokenizer "github.com/tamtam-chat/tokenizer"
)

// Counter tracks how many tokens of each Kind have been emitted,
// bucketed per UTC day so /v1/stats reports "today's" traffic.
type Counter interface {
	Incr(ctx context.Context, kind tokenizer.Kind, n int64) error
	Snapshot(ctx context.Context) (map[string]int64, error)
}

// RedisCounter is a Counter backed by Redis hash counters, grounded on
// Conduit's internal/web/cache/redis.go (same client construction and
// connectivity check via Ping).
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter dials addr and verifies connectivity before
// returning, exactly as Conduit's NewRedisCacheWithConfig does.
func NewRedisCounter(addr, password string, db int) (*RedisCounter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisCounter{client: client}, nil
}

// NewRedisCounterWithClient wraps an already-constructed client, used
// by tests against a miniredis instance.
func NewRedisCounterWithClient(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (c *RedisCounter) key() string {
	return "tokenizer:stats:" + time.Now().UTC().Format("2006-01-02")
}

func (c *RedisCounter) Incr(ctx context.Context, kind tokenizer.Kind, n int64) error {
	return c.client.HIncrBy(ctx, c.key(), kindName(kind), n).Err()
}

func (c *RedisCounter) Snapshot(ctx context.Context) (map[string]int64, error) {
	raw, err := c.client.HGetAll(ctx, c.key()).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for k, v := range raw {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			out[k] = n
		}
	}
	return out, nil
}

func kindName(k tokenizer.Kind) string {
	switch k {
	case tokenizer.KindText:
		return "text"
	case tokenizer.KindNewline:
		return "newline"
	case tokenizer.KindEmoji:
		return "emoji"
	case tokenizer.KindUserSticker:
		return "user_sticker"
	case tokenizer.KindMention:
		return "mention"
	case tokenizer.KindCommand:
		return "command"
	case tokenizer.KindHashTag:
		return "hashtag"
	case tokenizer.KindLink:
		return "link"
	case tokenizer.KindMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

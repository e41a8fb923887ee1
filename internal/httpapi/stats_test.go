package httpapi

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenizer "github.com/tamtam-chat/tokenizer"
)

func setupTestCounter(t *testing.T) (*RedisCounter, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCounterWithClient(client), mr
}

func TestRedisCounterIncrAndSnapshot(t *testing.T) {
	counter, mr := setupTestCounter(t)
	defer mr.Close()

	ctx := context.Background()
	require.NoError(t, counter.Incr(ctx, tokenizer.KindText, 3))
	require.NoError(t, counter.Incr(ctx, tokenizer.KindLink, 1))
	require.NoError(t, counter.Incr(ctx, tokenizer.KindText, 2))

	snap, err := counter.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), snap["text"])
	assert.Equal(t, int64(1), snap["link"])
}

func TestRedisCounterSnapshotEmpty(t *testing.T) {
	counter, mr := setupTestCounter(t)
	defer mr.Close()

	snap, err := counter.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestKindName(t *testing.T) {
	cases := map[tokenizer.Kind]string{
		tokenizer.KindText:        "text",
		tokenizer.KindNewline:     "newline",
		tokenizer.KindEmoji:       "emoji",
		tokenizer.KindUserSticker: "user_sticker",
		tokenizer.KindMention:     "mention",
		tokenizer.KindCommand:     "command",
		tokenizer.KindHashTag:     "hashtag",
		tokenizer.KindLink:        "link",
		tokenizer.KindMarkdown:    "markdown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kindName(kind))
	}
}

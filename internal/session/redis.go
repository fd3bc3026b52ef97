package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SIDCookie holds the browser session id when identifiers are kept in redis.
const SIDCookie = "planzo_sid"

// RedisStore keeps the identifiers of one browser session in the hash session:<sid>,
// one field per role.
type RedisStore struct {
	client   redis.Cmdable
	ttl      time.Duration
	sid      string
	newSID   func() string
	onNewSID func(sid string)
}

func NewRedisStore(client redis.Cmdable, sid string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, sid: sid, ttl: ttl, newSID: uuid.NewString}
}

func (s *RedisStore) key() string {
	return fmt.Sprintf("session:%s", s.sid)
}

func (s *RedisStore) Get(ctx context.Context, role entity.Role) (string, error) {
	if s.sid == "" {
		return "", ErrNoSession
	}

	id, err := s.client.HGet(ctx, s.key(), string(role)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	if id == "" {
		return "", ErrNoSession
	}

	return id, nil
}

// Set stores the identifier under a freshly issued sid. Identifiers of other roles move
// along with it and the previous hash is removed, so a sid known before sign-in never
// carries a signed-in identifier.
func (s *RedisStore) Set(ctx context.Context, role entity.Role, id string) error {
	fields := map[string]string{}
	previous := ""
	if s.sid != "" {
		previous = s.key()
		existing, err := s.client.HGetAll(ctx, previous).Result()
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}
		for name, value := range existing {
			fields[name] = value
		}
	}
	fields[string(role)] = id

	sid := s.newSID()
	key := fmt.Sprintf("session:%s", sid)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, fieldValues(fields)...)
	pipe.Expire(ctx, key, s.ttl)
	if previous != "" {
		pipe.Del(ctx, previous)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	s.sid = sid
	if s.onNewSID != nil {
		s.onNewSID(sid)
	}

	return nil
}

// fieldValues flattens fields into HSET arguments sorted by field name.
func fieldValues(fields map[string]string) []interface{} {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([]interface{}, 0, 2*len(names))
	for _, name := range names {
		values = append(values, name, fields[name])
	}
	return values
}

func (s *RedisStore) Clear(ctx context.Context, role entity.Role) error {
	if s.sid == "" {
		return nil
	}

	if err := s.client.HDel(ctx, s.key(), string(role)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

func RedisFactory(client redis.Cmdable, ttl time.Duration, secure bool) Factory {
	return func(c *gin.Context) Store {
		sid, _ := c.Cookie(SIDCookie)
		store := NewRedisStore(client, sid, ttl)
		store.onNewSID = func(sid string) {
			c.SetCookie(SIDCookie, sid, int(ttl.Seconds()), "/", "", secure, true)
		}
		return store
	}
}

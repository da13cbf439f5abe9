package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/volobus/internal/shell"
)

var ErrNotFound = errors.New("session not found")

// Store keeps one shell per visitor for the lifetime of their session. Entries
// expire after the configured TTL; nothing outlives it.
type Store interface {
	Get(ctx context.Context, id string) (shell.Shell, error)
	Set(ctx context.Context, id string, s shell.Shell) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}

func NewID() string {
	return uuid.NewString()
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (shell.Shell, error) {
	data, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return shell.Shell{}, ErrNotFound
	}
	if err != nil {
		return shell.Shell{}, err
	}

	var sh shell.Shell
	if err := json.Unmarshal(data, &sh); err != nil {
		return shell.Shell{}, err
	}

	return sh, nil
}

// Set writes the shell and refreshes its TTL.
func (s *RedisStore) Set(ctx context.Context, id string, sh shell.Shell) error {
	data, err := json.Marshal(sh)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key(id), data, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, key(id)).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

type memoryEntry struct {
	shell   shell.Shell
	expires time.Time
}

// MemoryStore is the process-local store used when Redis is disabled.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (shell.Shell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return shell.Shell{}, ErrNotFound
	}
	if s.ttl > 0 && s.now().After(e.expires) {
		delete(s.entries, id)
		return shell.Shell{}, ErrNotFound
	}
	sh := e.shell
	sh.Wizard = sh.Wizard.Clone()
	return sh, nil
}

func (s *MemoryStore) Set(ctx context.Context, id string, sh shell.Shell) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sh.Wizard = sh.Wizard.Clone()
	s.entries[id] = memoryEntry{
		shell:   sh,
		expires: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func key(id string) string {
	return "volobus:session:" + id
}

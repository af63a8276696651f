package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobconnect-backend/internal/config"
	"jobconnect-backend/internal/logging"
)

// ChatHistoryClient wraps the Redis client with conversation history
// management for the career-advice assistant.
type ChatHistoryClient struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// ChatEntry represents a single conversation entry
type ChatEntry struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// historyTTL bounds how long an idle conversation is retained.
const historyTTL = 24 * time.Hour

// NewChatHistoryClient creates a new Redis-backed history client.
func NewChatHistoryClient(cfg *config.Config) *ChatHistoryClient {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &ChatHistoryClient{
		client: redis.NewClient(opts),
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (r *ChatHistoryClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *ChatHistoryClient) Close() error {
	return r.client.Close()
}

// AppendExchange records one user/assistant exchange on the session's
// history list and refreshes its expiry.
func (r *ChatHistoryClient) AppendExchange(ctx context.Context, sessionID, userMessage, assistantReply string) error {
	key := r.sessionKey(sessionID)
	now := time.Now()

	entries := []ChatEntry{
		{ID: GenerateEntityID(), Role: "user", Content: userMessage, Timestamp: now},
		{ID: GenerateEntityID(), Role: "assistant", Content: assistantReply, Timestamp: now},
	}

	pipe := r.client.Pipeline()
	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal chat entry: %w", err)
		}
		pipe.RPush(ctx, key, data)
	}
	pipe.Expire(ctx, key, historyTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append chat history: %w", err)
	}

	return nil
}

// GetHistory returns the recorded entries for a session, oldest first.
func (r *ChatHistoryClient) GetHistory(ctx context.Context, sessionID string) ([]ChatEntry, error) {
	raw, err := r.client.LRange(ctx, r.sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}

	entries := make([]ChatEntry, 0, len(raw))
	for _, item := range raw {
		var entry ChatEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			r.logger.Warn("Skipping malformed chat history entry", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *ChatHistoryClient) sessionKey(sessionID string) string {
	return fmt.Sprintf("chat:history:%s", sessionID)
}

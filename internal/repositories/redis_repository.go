package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/cache"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	// CheckLoginRateLimit returns isAllowed, attempts left, seconds to wait.
	CheckLoginRateLimit(ctx context.Context, scope, username string) (bool, int, int, error)
	ResetLoginAttempts(ctx context.Context, scope, username string) error
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.RateConfig
	now    func() time.Time
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	slog.Info("Connecting to Redis", slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.RedisConnect.Username, cfg.RedisConnect.Host, cfg.RedisConnect.Port)))

	opt, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Successfully connected to Redis")

	return client, nil
}

func NewRateLimitRepo(client *redis.Client, cfg *config.RateConfig) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg, now: time.Now}
}

func loginAttemptsKey(scope, username string) string {
	return cache.Key("login_attempts", scope, username)
}

// Attempts live in a sorted set scored by unix time, entries older than the
// window are trimmed before counting.
func (r *redisRepository) CheckLoginRateLimit(ctx context.Context, scope, username string) (bool, int, int, error) {
	logger := middleware.LoggerFromContext(ctx)

	key := loginAttemptsKey(scope, username)
	now := r.now().Unix()
	window := int64(r.cfg.WindowSize.Seconds())
	windowStart := now - window

	pipe := r.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: r.now().UnixNano()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	if attempts <= r.cfg.MaxAttempts {
		return true, int(r.cfg.MaxAttempts - attempts), 0, nil
	}

	scores, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil || len(scores) == 0 {
		logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, int(window), fmt.Errorf("failed to get oldest attempt time: %w", err)
	}

	retryAfter := max(int64(scores[0].Score)+window-now, 0)

	logger.Warn("Login rate limit exceeded", slog.String("scope", scope), slog.String("username", username), slog.Int64("attempts", attempts))

	return false, 0, int(retryAfter), nil
}

func (r *redisRepository) ResetLoginAttempts(ctx context.Context, scope, username string) error {
	if err := r.client.Del(ctx, loginAttemptsKey(scope, username)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}

	return nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const failedLoginKeyPrefix = "cv::failed-login::"

// LoginTracker counts failed login attempts per identifier in redis and
// blocks further attempts once the limit is hit. The counter expires on its
// own after the cooldown, no unblocking logic needed.
type LoginTracker struct {
	maxFailures int
	cooldown    time.Duration
	redisClient *redis.Client
}

func NewLoginTracker(maxFailures int, cooldown time.Duration, redisClient *redis.Client) *LoginTracker {
	return &LoginTracker{
		maxFailures: maxFailures,
		cooldown:    cooldown,
		redisClient: redisClient,
	}
}

func (lt *LoginTracker) IsBlocked(ctx context.Context, identifier string) (bool, error) {
	cmd := lt.redisClient.Get(ctx, failedLoginKeyPrefix+identifier)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	failures, err := strconv.Atoi(cmd.Val())
	if err != nil {
		return false, fmt.Errorf("parse failed login counter: %w", err)
	}

	return failures >= lt.maxFailures, nil
}

func (lt *LoginTracker) RecordFailure(ctx context.Context, identifier string) error {
	key := failedLoginKeyPrefix + identifier
	cmd := lt.redisClient.Incr(ctx, key)
	if err := cmd.Err(); err != nil {
		return err
	}

	// first failure starts the cooldown window
	if cmd.Val() == 1 {
		if err := lt.redisClient.Expire(ctx, key, lt.cooldown).Err(); err != nil {
			return err
		}
	}

	return nil
}

func (lt *LoginTracker) Clear(ctx context.Context, identifier string) error {
	return lt.redisClient.Del(ctx, failedLoginKeyPrefix+identifier).Err()
}

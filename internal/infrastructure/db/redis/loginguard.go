package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// LoginGuard throttles repeated failed logins per email address.
// Key format: login_fail:<email>, an attempt counter that expires after the
// lockout window.
type LoginGuard struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginGuard creates a guard with the given attempt budget and lockout
// window. Non-positive values fall back to the defaults.
func NewLoginGuard(client *redis.Client, maxAttempts int, window time.Duration) *LoginGuard {
	g := &LoginGuard{client: client, maxAttempts: int64(maxAttempts), window: window}
	if g.maxAttempts <= 0 {
		g.maxAttempts = defaultMaxAttempts
	}
	if g.window <= 0 {
		g.window = defaultWindow
	}
	return g
}

// Blocked reports whether the address has exhausted its attempt budget.
func (g *LoginGuard) Blocked(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Get(ctx, g.key(email)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("login guard check: %w", err)
	}
	return n >= g.maxAttempts, nil
}

// RecordFailure counts a failed attempt. The first failure starts the
// lockout window; later ones do not extend it.
func (g *LoginGuard) RecordFailure(ctx context.Context, email string) error {
	key := g.key(email)
	n, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login guard incr: %w", err)
	}
	if n == 1 {
		if err := g.client.Expire(ctx, key, g.window).Err(); err != nil {
			return fmt.Errorf("login guard expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (g *LoginGuard) Reset(ctx context.Context, email string) error {
	if err := g.client.Del(ctx, g.key(email)).Err(); err != nil {
		return fmt.Errorf("login guard reset: %w", err)
	}
	return nil
}

func (g *LoginGuard) key(email string) string {
	return "login_fail:" + strings.ToLower(email)
}

package cache

import (
	"context"
	"time"

	"proptrust/config"
	"proptrust/internal/domain/service"
	"proptrust/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const notificationThrottleKeyPrefix = "proptrust:notify:window:"

// fixedWindowScript increments the window counter, starts its expiry on the first hit and
// returns {count, remaining ttl in ms}.
const fixedWindowScript = `
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`

// ThrottleParams defines the parameters of the notification throttle.
type ThrottleParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Config *config.Config
}

type redisNotificationThrottle struct {
	client *redis.Client
	script *redis.Script
	limit  int
	window time.Duration
}

// NewNotificationThrottle returns a Redis fixed-window throttle, or an allow-all throttle
// when Redis is not configured.
func NewNotificationThrottle(params ThrottleParams) service.NotificationThrottle {
	if params.Client == nil {
		return noopThrottle{}
	}

	return newRedisNotificationThrottle(params.Client, params.Config.Redis.NotificationLimit, params.Config.Redis.NotificationWindow)
}

func newRedisNotificationThrottle(client *redis.Client, limit int, window time.Duration) *redisNotificationThrottle {
	return &redisNotificationThrottle{
		client: client,
		script: redis.NewScript(fixedWindowScript),
		limit:  limit,
		window: window,
	}
}

// Allow consumes one send from the recipient's current window.
func (t *redisNotificationThrottle) Allow(ctx context.Context, recipientID uuid.UUID) (bool, time.Duration, error) {
	key := notificationThrottleKeyPrefix + recipientID.String()

	res, err := t.script.Run(ctx, t.client, []string{key}, t.window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, errors.Wrap(err, "failed to run notification throttle script")
	}
	if len(res) != 2 {
		return false, 0, errors.Errorf("unexpected throttle script response length %d", len(res))
	}

	count, ttl := res[0], time.Duration(res[1])*time.Millisecond
	if count > int64(t.limit) {
		return false, ttl, nil
	}

	return true, 0, nil
}

type noopThrottle struct{}

func (noopThrottle) Allow(context.Context, uuid.UUID) (bool, time.Duration, error) {
	return true, 0, nil
}

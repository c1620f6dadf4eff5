package cache

import (
	"context"
	"time"

	"proptrust/config"
	"proptrust/internal/domain/service"
	"proptrust/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const deliveryDedupKeyPrefix = "proptrust:notify:delivered:"

// DedupParams defines the parameters of the delivery de-duplicator.
type DedupParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Config *config.Config
}

type redisDeliveryDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeliveryDeduplicator returns a Redis SET NX de-duplicator, or one that treats every
// event as new when Redis is not configured.
func NewDeliveryDeduplicator(params DedupParams) service.DeliveryDeduplicator {
	if params.Client == nil {
		return noopDeduplicator{}
	}

	return &redisDeliveryDeduplicator{
		client: params.Client,
		ttl:    params.Config.Redis.DeliveryDedupTTL,
	}
}

// Claim records the event id if it has not been seen within the TTL.
func (d *redisDeliveryDeduplicator) Claim(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return true, nil
	}

	first, err := d.client.SetNX(ctx, deliveryDedupKeyPrefix+eventID, time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to claim delivery")
	}

	return first, nil
}

// Release removes a claim so a redelivery is processed again.
func (d *redisDeliveryDeduplicator) Release(ctx context.Context, eventID string) error {
	if eventID == "" {
		return nil
	}

	if err := d.client.Del(ctx, deliveryDedupKeyPrefix+eventID).Err(); err != nil {
		return errors.Wrap(err, "failed to release delivery claim")
	}

	return nil
}

type noopDeduplicator struct{}

func (noopDeduplicator) Claim(context.Context, string) (bool, error) {
	return true, nil
}

func (noopDeduplicator) Release(context.Context, string) error {
	return nil
}

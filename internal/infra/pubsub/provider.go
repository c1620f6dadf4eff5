package pubsub

import (
	"context"
	"log/slog"
	"sort"

	"proptrust/config"
	"proptrust/internal/domain/constants"
	"proptrust/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// builder validates the provider's settings and opens its publisher.
type builder func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

//nolint:gochecknoglobals
var builders = map[string]builder{
	constants.PubSubProviderLocal:   buildLocal,
	constants.PubSubProviderGoogle:  buildGoogle,
	constants.PubSubProviderGoCloud: buildGoCloud,
}

func buildLocal(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.LocalEndpoint == "" {
		return nil, errors.New("localEndpoint is required for the local provider")
	}

	return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
}

func buildGoogle(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.ProjectID == "" || cfg.TopicID == "" {
		return nil, errors.New("projectId and topicId are required for the google provider")
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

func buildGoCloud(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.TopicURL == "" {
		return nil, errors.New("topicUrl is required for the gocloud provider")
	}

	return NewGoCloudPublisher(ctx, cfg.TopicURL, logger)
}

// noopPublisher drops events; the outbox marks them delivered.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher opens the configured provider and closes it when the app stops.
// No provider, or "noop", yields a publisher that discards events.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	build, ok := builders[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider %q (want one of %v)", cfg.Provider, providerNames())
	}

	publisher, err := build(params.Ctx, cfg, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub provider %s", cfg.Provider)
	}
	logger.Info("EventPublisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func providerNames() []string {
	names := make([]string, 0, len(builders)+1)
	for name := range builders {
		names = append(names, name)
	}
	names = append(names, constants.PubSubProviderNoop)
	sort.Strings(names)

	return names
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"proptrust/internal/domain/service"

	"github.com/pkg/errors"
	portable "gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub"
)

// goCloudPublisher implements EventPublisher on a portable gocloud.dev topic. The topic URL
// scheme selects the driver; mem:// is registered for single-process deployments and tests.
type goCloudPublisher struct {
	topic  *portable.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic at topicURL.
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := portable.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	logger.Info("Portable Pub/Sub publisher initialized",
		slog.String("topic_url", topicURL),
	)

	return &goCloudPublisher{
		topic:  topic,
		logger: logger,
	}, nil
}

// PublishNotificationEvent sends the event as a JSON message body.
func (p *goCloudPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &portable.Message{
		Body:     data,
		Metadata: messageAttributes(event),
	}); err != nil {
		return errors.Wrap(err, "failed to send message")
	}

	p.logger.Debug("[GoCloudPubSub] Event published",
		slog.String("event_id", event.EventID),
		slog.String("kind", event.Kind),
	)

	return nil
}

// Close flushes pending sends and releases the topic.
func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}

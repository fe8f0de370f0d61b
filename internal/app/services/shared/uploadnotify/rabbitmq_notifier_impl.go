package uploadnotify

import (
	"context"

	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQNotifier struct {
	Channel  *amqp091.Channel
	Exchange string
}

// NewRabbitMQNotifier declares a topic exchange for upload status fanout.
// Consumers bind a queue per upload id to receive completion events.
func NewRabbitMQNotifier(rabbitMQConnection *amqp091.Connection, exchange string) (contracts.UploadNotifier, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	err = channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &rabbitMQNotifier{
		Channel:  channel,
		Exchange: exchange,
	}, nil
}

func (n *rabbitMQNotifier) PublishUploadStatus(ctx context.Context, message *contracts.UploadStatusMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = n.Channel.PublishWithContext(ctx, n.Exchange, message.UploadID, false, false, publishing)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, n.Exchange)
	}
	return nil
}

func (n *rabbitMQNotifier) Close() error {
	return n.Channel.Close()
}

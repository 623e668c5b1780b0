package rabbitmq

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bizmetrics-api/internal/config"
	"github.com/vfg2006/bizmetrics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const publishTimeout = 5 * time.Second

// channel é o subconjunto de *amqp091.Channel usado pelo publisher
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher publica eventos de métricas atualizadas em uma exchange direct durável
type Publisher struct {
	conn       *amqp091.Connection
	channel    channel
	exchange   string
	routingKey string
}

func NewPublisher(cfg config.Broker) (*Publisher, error) {
	conn, err := amqp091.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("erro ao abrir canal: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("erro ao declarar exchange %s: %w", cfg.Exchange, err)
	}

	logrus.WithFields(logrus.Fields{
		"exchange":    cfg.Exchange,
		"routing_key": cfg.RoutingKey,
	}).Info("Publisher de eventos conectado ao broker")

	return &Publisher{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
	}, nil
}

// PublishMetricsUpdated publica o evento de um upload aceito
func (p *Publisher) PublishMetricsUpdated(ctx context.Context, event *domain.MetricsUpdatedEvent) error {
	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,   // exchange
		p.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("erro ao publicar evento %s: %w", event.UploadID, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar canal do broker")
	}
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

func newPublishing(event *domain.MetricsUpdatedEvent) (amqp091.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("erro ao serializar evento: %w", err)
	}

	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.UploadID,
		Timestamp:    time.Now(),
		Type:         "metrics.updated",
		Body:         body,
	}, nil
}

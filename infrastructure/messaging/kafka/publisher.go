package kafka

import (
	"context"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// DigestPublisher publica o resumo diário de KPIs de uma empresa
type DigestPublisher interface {
	Publish(ctx context.Context, digest domain.KPIDigest) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
	topic  string
}

// NewDigestPublisher cria o publicador a partir da configuração. Sem brokers
// configurados, retorna um publicador que apenas registra o resumo no log.
func NewDigestPublisher(cfg config.Kafka) DigestPublisher {
	if len(cfg.Brokers) == 0 {
		return &logPublisher{}
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Topic:    cfg.DigestTopic,
			Balancer: &kafka.LeastBytes{},
		},
		topic: cfg.DigestTopic,
	}
}

// Publish envia o resumo usando o ID da empresa como chave da mensagem,
// mantendo os resumos de uma mesma empresa na mesma partição.
func (p *Publisher) Publish(ctx context.Context, digest domain.KPIDigest) error {
	data, err := jsoniter.Marshal(digest)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar resumo de KPIs")
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(digest.CompanyID)),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "erro ao publicar resumo de KPIs no tópico %s", p.topic)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"topic":      p.topic,
		"company_id": digest.CompanyID,
		"run_id":     digest.RunID,
	}).Debug("Resumo de KPIs publicado no Kafka")

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

type logPublisher struct{}

func (logPublisher) Publish(ctx context.Context, digest domain.KPIDigest) error {
	log.ForContext(ctx).WithFields(log.Fields{
		"company_id": digest.CompanyID,
		"run_id":     digest.RunID,
	}).Infof("Kafka não configurado, resumo de KPIs da empresa %s não publicado", digest.CompanyName)
	return nil
}

func (logPublisher) Close() error {
	return nil
}

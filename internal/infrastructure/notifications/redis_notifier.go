package notifications

import (
	"context"
	"encoding/json"
	"time"

	"compras_xpto/internal/domain/entities"
	"compras_xpto/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const EventStatusChanged = "requisicao.status_changed"

// StatusEvent is the message published for every committed status change. E-mail and
// WhatsApp workers subscribe to the channel and render it.
type StatusEvent struct {
	Event               string                    `json:"event"`
	RequisicaoID        string                    `json:"requisicao_id"`
	Protocolo           string                    `json:"protocolo"`
	Titulo              string                    `json:"titulo"`
	Status              entities.RequisicaoStatus `json:"status"`
	StatusLabel         string                    `json:"status_label"`
	SolicitanteNome     string                    `json:"solicitante_nome"`
	SolicitanteEmail    string                    `json:"solicitante_email,omitempty"`
	SolicitanteTelefone string                    `json:"solicitante_telefone,omitempty"`
	MotivoRejeicao      *string                   `json:"motivo_rejeicao,omitempty"`
	PrevisaoEntrega     *time.Time                `json:"previsao_entrega,omitempty"`
	OccurredAt          time.Time                 `json:"occurred_at"`
}

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes status events on a Redis pub/sub channel.
type RedisNotifier struct {
	client  publisher
	channel string
}

var _ interfaces.INotifier = (*RedisNotifier)(nil)

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
		ReadTimeout: 5 * time.Second,
	})
}

func NewRedisNotifier(client publisher, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context, r entities.Requisicao, status entities.RequisicaoStatus) error {
	payload, err := json.Marshal(NewStatusEvent(r, status))
	if err != nil {
		return errors.Wrap(err, "marshal status event")
	}

	receivers, err := n.client.Publish(ctx, n.channel, payload).Result()
	if err != nil {
		return errors.Wrapf(err, "publish status event on %s", n.channel)
	}
	if receivers == 0 {
		log.WithFields(log.Fields{"requisicao_id": r.ID, "channel": n.channel}).Debug("[requisicao][notify] no subscribers")
	}
	return nil
}

func NewStatusEvent(r entities.Requisicao, status entities.RequisicaoStatus) StatusEvent {
	return StatusEvent{
		Event:               EventStatusChanged,
		RequisicaoID:        r.ID,
		Protocolo:           r.Protocolo,
		Titulo:              r.Titulo,
		Status:              status,
		StatusLabel:         status.Label(),
		SolicitanteNome:     r.SolicitanteNome,
		SolicitanteEmail:    r.SolicitanteEmail,
		SolicitanteTelefone: r.SolicitanteTelefone,
		MotivoRejeicao:      r.MotivoRejeicao,
		PrevisaoEntrega:     r.PrevisaoEntrega,
		OccurredAt:          r.UpdatedAt,
	}
}

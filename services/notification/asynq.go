package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"miohost/config"
	"miohost/models"
	"miohost/utils"
)

type asynqNotifier struct {
	client *asynq.Client
}

// NewAsynqNotifier returns a DeskNotifier that enqueues desk tasks on
// the Redis-backed queue.
func NewAsynqNotifier() DeskNotifier {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &asynqNotifier{client: client}
}

func (n *asynqNotifier) enqueue(ctx context.Context, note DeskNotification) error {
	payload, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("notification: encode: %w", err)
	}
	task := asynq.NewTask(TypeDeskNotify, payload)
	info, err := n.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("notification: enqueue: %w", err)
	}
	utils.GetLogger().Debug("desk notification enqueued",
		zap.String("task", info.ID),
		zap.String("kind", note.Kind),
		zap.String("ref", note.RefID))
	return nil
}

func (n *asynqNotifier) NotifyServiceRequest(ctx context.Context, req models.ServiceRequest) error {
	return n.enqueue(ctx, DeskNotification{
		Kind:      KindServiceRequest,
		RefID:     req.ID,
		Room:      req.Payload.Room,
		Summary:   fmt.Sprintf("%s (%s)", req.ServiceID, req.Price.EN),
		CreatedAt: req.CreatedAt,
	})
}

func (n *asynqNotifier) NotifyReceptionMessage(ctx context.Context, msg models.ReceptionMessage) error {
	summary := msg.Message
	if msg.Topic != nil {
		summary = fmt.Sprintf("%s: %s", msg.Topic.EN, msg.Message)
	}
	return n.enqueue(ctx, DeskNotification{
		Kind:      KindReceptionMessage,
		RefID:     msg.ID,
		Room:      msg.Room,
		Summary:   summary,
		CreatedAt: msg.CreatedAt,
	})
}

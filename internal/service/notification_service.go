package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elitekutzdev/elitekutz-sms/internal/events"
	"github.com/elitekutzdev/elitekutz-sms/internal/notify"
	"github.com/elitekutzdev/elitekutz-sms/internal/observability"
	"github.com/elitekutzdev/elitekutz-sms/internal/roster"
	"github.com/elitekutzdev/elitekutz-sms/internal/sms"
)

// NotificationService plans kiosk events and fans the resulting
// messages out to the SMS sender.
type NotificationService struct {
	store   *roster.Store
	sender  sms.Sender
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NotificationDependencies bundles collaborators.
type NotificationDependencies struct {
	Store   *roster.Store
	Sender  sms.Sender
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// NewNotificationService creates the service.
func NewNotificationService(deps NotificationDependencies) *NotificationService {
	return &NotificationService{
		store:   deps.Store,
		sender:  deps.Sender,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}
}

// SendResult is the per-recipient outcome of one planned message.
type SendResult struct {
	To    string `json:"to"`
	Kind  string `json:"kind"`
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// BatchResult aggregates one event's send outcomes. Results follow the
// plan order (client first, staff in roster/group order) regardless of
// network completion order.
type BatchResult struct {
	BatchID string       `json:"batch_id"`
	Total   int          `json:"total"`
	Sent    int          `json:"sent"`
	Failed  int          `json:"failed"`
	Results []SendResult `json:"results"`
}

// Dispatch plans the event against a fresh roster snapshot and sends
// every planned message concurrently. Planning failures abort before
// any send; send failures settle independently without cancelling
// sibling sends.
func (n *NotificationService) Dispatch(ctx context.Context, kind events.EventKind, payload events.Payload) (*BatchResult, error) {
	snap := n.store.Snapshot()
	msgs, err := notify.Plan(kind, payload, snap)
	if err != nil {
		n.logger.Warn("plan rejected",
			zap.String("event_kind", string(kind)),
			zap.Error(err))
		return nil, err
	}

	batch := &BatchResult{
		BatchID: uuid.NewString(),
		Total:   len(msgs),
		Results: make([]SendResult, len(msgs)),
	}

	var wg sync.WaitGroup
	for i, msg := range msgs {
		wg.Add(1)
		go func(i int, msg notify.PlannedMessage) {
			defer wg.Done()
			result := SendResult{To: msg.To, Kind: msg.Kind}
			if err := n.sender.Send(ctx, msg.To, msg.Text); err != nil {
				result.Error = err.Error()
			} else {
				result.Sent = true
			}
			batch.Results[i] = result
		}(i, msg)
	}
	wg.Wait()

	for _, r := range batch.Results {
		n.metrics.RecordSend(r.Kind, r.Sent)
		if r.Sent {
			batch.Sent++
			continue
		}
		batch.Failed++
		n.logger.Error("send failed",
			zap.String("batch_id", batch.BatchID),
			zap.String("to", r.To),
			zap.String("kind", r.Kind),
			zap.String("error", r.Error))
	}

	n.logger.Info("event dispatched",
		zap.String("batch_id", batch.BatchID),
		zap.String("event_kind", string(kind)),
		zap.Int("total", batch.Total),
		zap.Int("sent", batch.Sent),
		zap.Int("failed", batch.Failed))
	return batch, nil
}

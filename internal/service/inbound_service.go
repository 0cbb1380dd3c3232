package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/elitekutzdev/elitekutz-sms/internal/inbound"
	"github.com/elitekutzdev/elitekutz-sms/internal/notify"
	"github.com/elitekutzdev/elitekutz-sms/internal/roster"
	"github.com/elitekutzdev/elitekutz-sms/internal/sms"
)

// InboundService classifies inbound SMS commands and applies their side
// effects: roster status changes and the single reply every branch
// except opt-out produces.
type InboundService struct {
	store  *roster.Store
	sender sms.Sender
	logger *zap.Logger
}

// InboundDependencies bundles collaborators.
type InboundDependencies struct {
	Store  *roster.Store
	Sender sms.Sender
	Logger *zap.Logger
}

// NewInboundService creates the service.
func NewInboundService(deps InboundDependencies) *InboundService {
	return &InboundService{store: deps.Store, sender: deps.Sender, logger: deps.Logger}
}

// InboundOutcome reports what a webhook delivery resulted in.
type InboundOutcome struct {
	Action    inbound.Action
	Reply     string
	ReplySent bool
}

// Handle processes one inbound message. Classification never fails;
// unknown commands degrade to a default reply so the webhook always
// acknowledges. Reply delivery failure is logged, not surfaced, since
// the command's side effect has already been applied.
func (s *InboundService) Handle(ctx context.Context, fromRaw, textRaw string) (*InboundOutcome, error) {
	action := inbound.Classify(fromRaw, textRaw, s.store.Snapshot())
	outcome := &InboundOutcome{Action: action}

	switch action.Kind {
	case inbound.ActionOptOut:
		// compliance silence: carriers handle STOP confirmations
		s.logger.Info("opt-out received", zap.String("from", fromRaw))
		return outcome, nil

	case inbound.ActionOptIn:
		outcome.Reply = notify.ReplyOptIn

	case inbound.ActionHelp:
		outcome.Reply = notify.ReplyHelp

	case inbound.ActionSetAvailability:
		if action.StaffID == "" {
			s.logger.Info("availability command from unknown number", zap.String("from", fromRaw))
			outcome.Reply = notify.ReplyNotRecognized
			break
		}
		if _, err := s.store.SetStatus(action.StaffID, action.Status()); err != nil {
			return nil, err
		}
		s.logger.Info("staff status updated",
			zap.String("staff_id", action.StaffID),
			zap.Bool("available", action.Available))
		outcome.Reply = notify.ReplyAvailability(action.StaffName, action.Available)

	default:
		outcome.Reply = notify.ReplyDefault
	}

	if err := s.sender.Send(ctx, fromRaw, outcome.Reply); err != nil {
		s.logger.Error("reply send failed", zap.String("to", fromRaw), zap.Error(err))
	} else {
		outcome.ReplySent = true
	}
	return outcome, nil
}

package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Notifier delivers a best-effort order notification after the order is
// recorded. A failure is logged and swallowed: it never reverses the
// store write and never changes the response returned to the client.
type Notifier interface {
	Notify(ctx context.Context, ord Order) error
}

type Service struct {
	repo          Repository
	notifier      Notifier
	notifyTimeout time.Duration
	log           *zap.Logger
}

// NewService builds the order service. notifier may be nil when no mail
// transport is configured.
func NewService(repo Repository, notifier Notifier, notifyTimeout time.Duration, log *zap.Logger) *Service {
	return &Service{
		repo:          repo,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		log:           log,
	}
}

// Create assigns a fresh id and creation timestamp, stores the order and
// dispatches the notification. It never fails for a payload that passed
// handler validation.
func (s *Service) Create(req CreateOrderRequest) (Order, error) {
	ord := Order{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		AdditionalInfo:  normalizeAdditionalInfo(req.AdditionalInfo),
		OrderItems:      req.OrderItems,
		Total:           req.Total,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.repo.Create(ord)
	if err != nil {
		return Order{}, errors.Wrap(err, "create order")
	}

	s.dispatchNotification(created)
	return created, nil
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

// dispatchNotification runs the notifier on its own goroutine with a
// bounded timeout so order creation never waits on mail delivery.
func (s *Service) dispatchNotification(ord Order) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(ctx, ord); err != nil {
			s.log.Warn("order notification failed",
				zap.String("orderId", ord.ID),
				zap.Error(err))
		}
	}()
}

// normalizeAdditionalInfo collapses an omitted or empty value to an
// explicit nil so the stored record always carries a definite absent
// marker.
func normalizeAdditionalInfo(info *string) *string {
	if info == nil || *info == "" {
		return nil
	}
	return info
}

package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tareas-backend/internal/model"
	"tareas-backend/internal/mq"
	"tareas-backend/pkg/metrics"
)

type TareaWriter interface {
	Insert(ctx context.Context, in *model.TareaInput) (int, error)
	Update(ctx context.Context, codigo string, in *model.TareaInput) error
	Delete(ctx context.Context, codigo string) error
}

type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// Service runs the task mutations and announces them on the event
// exchange. Reads go straight through the repository.
type Service struct {
	tareas    TareaWriter
	publisher EventPublisher
	logger    *zap.Logger
}

// NewService accepts a nil publisher; events are then skipped entirely.
func NewService(tareas TareaWriter, publisher EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		tareas:    tareas,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) Create(ctx context.Context, in *model.TareaInput) (int, error) {
	id, err := s.tareas.Insert(ctx, in)
	if err != nil {
		return 0, err
	}

	metrics.IncrementTaskMutation("created")
	s.publish(mq.RoutingKeyTareaCreada, in)
	return id, nil
}

func (s *Service) Update(ctx context.Context, codigo string, in *model.TareaInput) error {
	if err := s.tareas.Update(ctx, codigo, in); err != nil {
		return err
	}

	metrics.IncrementTaskMutation("updated")
	payload := *in
	payload.CodigoUnico = codigo
	s.publish(mq.RoutingKeyTareaActualizada, &payload)
	return nil
}

func (s *Service) Delete(ctx context.Context, codigo string) error {
	if err := s.tareas.Delete(ctx, codigo); err != nil {
		return err
	}

	metrics.IncrementTaskMutation("deleted")
	s.publish(mq.RoutingKeyTareaEliminada, &model.TareaInput{CodigoUnico: codigo})
	return nil
}

// publish is fire-and-forget: a broker failure is logged and never
// fails the request that triggered it.
func (s *Service) publish(routingKey string, in *model.TareaInput) {
	if s.publisher == nil {
		return
	}

	payload := mq.TareaEventPayload{
		CodigoUnico: in.CodigoUnico,
		Titulo:      in.Titulo,
		Estado:      in.Estado,
		OccurredAt:  time.Now(),
	}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		s.logger.Warn("Failed to publish tarea event",
			zap.String("routing_key", routingKey),
			zap.String("codigo_unico", in.CodigoUnico),
			zap.Error(err),
		)
	}
}

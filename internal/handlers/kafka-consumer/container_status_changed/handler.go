package container_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"containerhub/internal/entities"
	containerservice "containerhub/internal/service/container"
	eventservice "containerhub/internal/service/containerevent"
	"containerhub/pkg/logger"
)

type Handler struct {
	eventService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, eventService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		eventService:             eventService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("container.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance or consumer group shutdown
			h.log.Info("container.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. Returns true when
// ConsumeClaim must stop (context cancelled), false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("container.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("container", event.ContainerID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("container.status.changed processing")

	status := entities.ContainerStatusType(event.Status)
	containerModify := entities.ImportContainerModify{
		ID:     &event.ContainerID,
		Status: &status,
	}

	container, err := h.eventService.ProcessContainerStatusChange(ctx, containerModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("container.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, eventservice.ErrUndefinedStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("container.status.changed handler unknown status for container")

		case errors.Is(err, containerservice.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("container.status.changed handler transition not allowed for container")

		case errors.Is(err, containerservice.ErrContainerNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("container.status.changed handler unknown container")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("container.status.changed handler failed to process container")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("container", container.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", container.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("container.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}

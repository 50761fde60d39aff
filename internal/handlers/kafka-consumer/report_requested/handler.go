package report_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"reporting/internal/entities"
	reportservice "reporting/internal/service/report"
	"reporting/pkg/logger"
)

type Handler struct {
	reportService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, reportService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		reportService:            reportService,
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
				// Messages() закрыт — выходим
				h.log.Info("report.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("report.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event requestedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("report.requested handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("report_id", event.ReportID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("report.requested processing")

	params := entities.ReportParams{CustomerName: event.CustomerName}
	if event.AsOf != nil {
		asOf, err := time.Parse(time.RFC3339, *event.AsOf)
		if err != nil {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("report.requested handler bad as_of timestamp")
			sess.MarkMessage(message, "")
			return false
		}
		params.AsOf = &asOf
	}

	result, err := h.reportService.RunReport(ctx, event.ReportID, params)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("report.requested handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, reportservice.ErrReportNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("report.requested handler unknown report")

		case errors.Is(err, reportservice.ErrInvalidReportID) || errors.Is(err, reportservice.ErrInvalidParams):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("report.requested handler invalid request")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("report.requested handler failed to evaluate report")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("slug", result.Info.Slug),
		logger.NewField("rows", len(result.Rows)),
	).Info("report.requested: evaluated")

	sess.MarkMessage(message, "")
	return false
}

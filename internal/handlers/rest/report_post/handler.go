package report_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"reporting/internal/entities"
	reportservice "reporting/internal/service/report"
	"reporting/pkg/logger"
)

type runRequest struct {
	CustomerName *string `json:"customer_name,omitempty"`
	AsOf         *string `json:"as_of,omitempty"` // RFC 3339
}

type resultDTO struct {
	ID      int         `json:"id"`
	Slug    string      `json:"slug"`
	Columns []columnDTO `json:"columns"`
	Rows    [][]any     `json:"rows"`
}

type columnDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req runRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	params := entities.ReportParams{CustomerName: req.CustomerName}
	if req.AsOf != nil {
		asOf, err := time.Parse(time.RFC3339, *req.AsOf)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		params.AsOf = &asOf
	}

	result, err := h.service.RunReport(r.Context(), id, params)
	if err != nil {
		switch {
		case errors.Is(err, reportservice.ErrReportNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, reportservice.ErrInvalidReportID),
			errors.Is(err, reportservice.ErrInvalidParams):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("report_id", id),
				logger.NewField("error", err),
			).Error("run report")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	resultJSON := resultDTO{
		ID:   result.Info.ID,
		Slug: result.Info.Slug,
		Rows: result.Rows,
	}
	for _, c := range result.Info.Columns {
		resultJSON.Columns = append(resultJSON.Columns, columnDTO{
			Name: c.Name,
			Type: string(c.Type),
		})
	}
	if resultJSON.Rows == nil {
		resultJSON.Rows = [][]any{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(resultJSON)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package reports_get

import (
	"encoding/json"
	"net/http"

	"reporting/pkg/logger"
)

type reportDTO struct {
	ID          int              `json:"id"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Params      []reportParamDTO `json:"params,omitempty"`
	Columns     []columnDTO      `json:"columns"`
}

type reportParamDTO struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Default  string `json:"default,omitempty"`
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	infos := h.service.ListReports()

	reportDTOs := make([]reportDTO, len(infos))
	for i, info := range infos {
		reportDTOs[i].ID = info.ID
		reportDTOs[i].Slug = info.Slug
		reportDTOs[i].Description = info.Description
		for _, p := range info.Params {
			reportDTOs[i].Params = append(reportDTOs[i].Params, reportParamDTO{
				Name:     p.Name,
				Required: p.Required,
				Default:  p.Default,
			})
		}
		for _, c := range info.Columns {
			reportDTOs[i].Columns = append(reportDTOs[i].Columns, columnDTO{
				Name: c.Name,
				Type: string(c.Type),
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(reportDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

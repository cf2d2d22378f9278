package handlers

import (
	"net/http"

	"github.com/crmkit/salespipe/internal/usecase"
)

type ReportHandler struct {
	Reports *usecase.ReportUseCase
}

func NewReportHandler(reports *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

func (h *ReportHandler) LastWeek(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Reports.ClosedLastWeek(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

type pipelineResponse struct {
	TotalLeadsInPipeline int64 `json:"totalLeadsInPipeline"`
}

func (h *ReportHandler) Pipeline(w http.ResponseWriter, r *http.Request) {
	count, err := h.Reports.PipelineCount(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, pipelineResponse{TotalLeadsInPipeline: count})
}

func (h *ReportHandler) StatusCount(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Reports.CountByStatus(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) AgentCount(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Reports.CountByAgent(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

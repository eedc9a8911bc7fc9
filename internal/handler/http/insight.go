package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insight"
	"github.com/cmlabs-hris/attendance-insights-go/internal/handler/http/response"
)

type InsightHandler interface {
	// GetDaily returns the per-employee classification for a day
	GetDaily(w http.ResponseWriter, r *http.Request)
	// GetSummary returns bucket totals for a day
	GetSummary(w http.ResponseWriter, r *http.Request)
	// GetRange returns per-day aggregates plus leave ranges for a window
	GetRange(w http.ResponseWriter, r *http.Request)
	// GetLeaveRanges returns consolidated leave rows for a window
	GetLeaveRanges(w http.ResponseWriter, r *http.Request)
}

type insightHandlerImpl struct {
	insightService insight.Service
}

func NewInsightHandler(insightService insight.Service) InsightHandler {
	return &insightHandlerImpl{insightService: insightService}
}

// respond wraps the payload, moving degraded-source names into the meta.
func respond(w http.ResponseWriter, data interface{}, degraded []string) {
	if len(degraded) > 0 {
		response.SuccessWithMeta(w, data, &response.Meta{Degraded: degraded})
		return
	}
	response.Success(w, data)
}

// GetDaily handles GET /insights/daily
func (h *insightHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	req := insight.DailyRequest{Date: r.URL.Query().Get("date")}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.insightService.GetDailyInsight(r.Context(), req.Date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	respond(w, result, result.Degraded)
}

// GetSummary handles GET /insights/summary
func (h *insightHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	req := insight.DailyRequest{
		Date:    r.URL.Query().Get("date"), // format: YYYY-MM-DD, default: today
		GroupBy: r.URL.Query().Get("by"),   // "" or "department"
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.insightService.GetSummary(r.Context(), req.Date, req.GroupBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	respond(w, result, result.Degraded)
}

// GetRange handles GET /insights/range
func (h *insightHandlerImpl) GetRange(w http.ResponseWriter, r *http.Request) {
	req := insight.RangeRequest{
		Start: r.URL.Query().Get("start"), // format: YYYY-MM-DD
		End:   r.URL.Query().Get("end"),   // format: YYYY-MM-DD
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.insightService.GetRangeInsight(r.Context(), req.Start, req.End)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	respond(w, result, result.Degraded)
}

// GetLeaveRanges handles GET /insights/leave-ranges
func (h *insightHandlerImpl) GetLeaveRanges(w http.ResponseWriter, r *http.Request) {
	req := insight.RangeRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.insightService.GetLeaveRanges(r.Context(), req.Start, req.End)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	respond(w, result, result.Degraded)
}

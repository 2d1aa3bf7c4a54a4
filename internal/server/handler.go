package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gyeh/carebalance/internal/balance"
	"github.com/gyeh/carebalance/internal/classify"
	"github.com/gyeh/carebalance/internal/metrics"
	"github.com/gyeh/carebalance/internal/model"
	"github.com/gyeh/carebalance/internal/report"
)

// Handler serves the balance engine over HTTP.
type Handler struct {
	log     zerolog.Logger
	metrics *metrics.Collector
}

// NewHandler returns a Handler. mc may be nil.
func NewHandler(log zerolog.Logger, mc *metrics.Collector) *Handler {
	return &Handler{log: log, metrics: mc}
}

// RegisterRoutes mounts the engine routes on api.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/evaluate", h.Evaluate)
	api.GET("/labels", h.Labels)
}

// EvaluateResponse is the body returned by POST /v1/evaluate.
type EvaluateResponse struct {
	EvaluationID string        `json:"evaluation_id"`
	Result       *model.Result `json:"result"`
	Report       string        `json:"report"`
}

// Evaluate handles POST /v1/evaluate. Fields left out of the body keep the
// blank-form defaults.
func (h *Handler) Evaluate(c echo.Context) error {
	in := model.NewInput()
	if err := c.Bind(in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := classify.ValidateInput(in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	res := balance.Evaluate(in)
	note := report.Compose(in, res)
	if h.metrics != nil {
		h.metrics.RecordEvaluation("http", res, time.Since(start))
	}

	rid, _ := c.Get(ctxRequestID).(string)
	c.Set(ctxAlerts, len(res.Alerts))
	for _, a := range res.Alerts {
		h.log.Info().Str("request_id", rid).Str("alert", string(a.Code)).Msg("advisory raised")
	}

	return c.JSON(http.StatusOK, EvaluateResponse{
		EvaluationID: rid,
		Result:       res,
		Report:       note,
	})
}

// Label is one enumerated value with its display name.
type Label struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LabelsResponse lists every enumeration the evaluate endpoint accepts.
type LabelsResponse struct {
	Periods     []int   `json:"periods"`
	Ventilation []Label `json:"ventilation"`
	ECT         []Label `json:"ect"`
	SkinLoss    []Label `json:"skin_loss"`
}

// Labels handles GET /v1/labels: every accepted enum value with its display name.
func (h *Handler) Labels(c echo.Context) error {
	resp := LabelsResponse{}
	for _, p := range model.AllPeriods {
		resp.Periods = append(resp.Periods, int(p))
	}
	for _, v := range classify.AllVentModes {
		resp.Ventilation = append(resp.Ventilation, Label{Value: string(v), Label: classify.VentModeLabel(v)})
	}
	for _, m := range classify.AllECTModes {
		resp.ECT = append(resp.ECT, Label{Value: string(m), Label: classify.ECTModeLabel(m)})
	}
	for _, s := range classify.AllSkinLosses {
		resp.SkinLoss = append(resp.SkinLoss, Label{Value: string(s), Label: classify.SkinLossLabel(s)})
	}
	return c.JSON(http.StatusOK, resp)
}

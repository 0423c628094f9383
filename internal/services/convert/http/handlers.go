// Package http provides http transport for the convert service
package http

import (
	stdhttp "net/http"
	"strconv"

	"csvforge/internal/modkit/httpkit"
	perr "csvforge/internal/platform/errors"
	"csvforge/internal/services/convert/domain"
)

// Register mounts convert endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ConvertInput](r, "/convert", h.convert)
	httpkit.GetJSON(r, "/sample", h.sample)
	httpkit.GetJSON(r, "/runs", h.runs)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Convert CSV to JSON and serializer code
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.ConvertInput true "Conversion request"
// @Success 200 {object} domain.ConvertResult "ok"
// @Router /convert [post]
func (h *handlers) convert(r *stdhttp.Request, in domain.ConvertInput) (any, error) {
	// Path reads files on the server; only the local CLI may use it
	if in.Path != "" {
		return nil, perr.InvalidArgf("path is not accepted here, send csv text")
	}
	return h.svc.Convert(r.Context(), in)
}

// @Summary Built-in sample dataset and its conversion
// @Tags Convert
// @Produce json
// @Success 200 {object} domain.SamplePreview "ok"
// @Router /sample [get]
func (h *handlers) sample(r *stdhttp.Request) (any, error) {
	return h.svc.Sample(r.Context())
}

// @Summary Recent conversion runs from the ledger
// @Tags Convert
// @Produce json
// @Param limit query int false "max rows"
// @Success 200 {array} domain.RunRecord "ok"
// @Router /runs [get]
func (h *handlers) runs(r *stdhttp.Request) (any, error) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return h.svc.RecentRuns(r.Context(), limit)
}

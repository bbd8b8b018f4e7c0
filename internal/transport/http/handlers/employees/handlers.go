package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"employeeform/internal/domain/employee"
	"employeeform/internal/platform/metrics"
	"employeeform/internal/transport/http/api"
	"employeeform/internal/transport/http/middleware"
	"employeeform/internal/transport/http/shared"
)

type Handler struct {
	log     *zap.Logger
	metrics *metrics.Collector
}

func NewHandler(log *zap.Logger, collector *metrics.Collector) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{log: log, metrics: collector}
}

// RegisterRoutes mounts the JSON API. Every route expects the session
// middleware to have run.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/form", func(r chi.Router) {
		r.Get("/", h.handleGetForm)
		r.Put("/fields/{field}", h.handleSetField)
		r.Post("/submit", h.handleSubmit)
		r.Post("/clear", h.handleClear)
	})
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.Post("/edit", h.handleStartEdit)
			r.Delete("/", h.handleDeleteEmployee)
		})
	})
}

type formView struct {
	Draft    employee.Draft `json:"draft"`
	EditMode bool           `json:"editMode"`
}

func viewOf(form *employee.Form) formView {
	return formView{Draft: form.Draft(), EditMode: form.EditMode()}
}

type setFieldPayload struct {
	Value   string `json:"value"`
	Checked *bool  `json:"checked"`
}

func (h *Handler) handleGetForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	api.Success(w, viewOf(sess.Form), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetField(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	reqID := middleware.GetRequestID(r.Context())

	var payload setFieldPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	checked := true
	if payload.Checked != nil {
		checked = *payload.Checked
	}

	field := chi.URLParam(r, "field")
	if err := sess.Form.SetField(field, payload.Value, checked); err != nil {
		if errors.Is(err, employee.ErrUnknownField) {
			api.Fail(w, http.StatusBadRequest, "unknown_field", "unknown form field "+field, reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "set_field_failed", "failed to update field", reqID)
		return
	}
	api.Success(w, viewOf(sess.Form), reqID)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	reqID := middleware.GetRequestID(r.Context())

	result, err := h.submit(sess, reqID)
	if err != nil {
		if shared.FailValidation(w, reqID, err) {
			return
		}
		api.Fail(w, http.StatusInternalServerError, "submit_failed", "failed to submit form", reqID)
		return
	}
	if result.Op == employee.OpCreate {
		api.Created(w, result, reqID)
		return
	}
	api.Success(w, result, reqID)
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	sess.Form.Clear()
	api.Success(w, viewOf(sess.Form), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	api.Success(w, employee.BuildTable(sess.Store.List()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	rec, found := sess.Store.Get(chi.URLParam(r, "employeeID"))
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStartEdit(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	if _, err := sess.Form.StartEditByID(chi.URLParam(r, "employeeID")); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, viewOf(sess.Form), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	deleted := h.delete(sess, chi.URLParam(r, "employeeID"), middleware.GetRequestID(r.Context()))
	api.Success(w, map[string]bool{"deleted": deleted}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) submit(sess *employee.Session, reqID string) (employee.SubmitResult, error) {
	result, err := sess.Form.Submit()
	if err != nil {
		var verr *employee.ValidationError
		if errors.As(err, &verr) {
			h.metrics.SubmitRejected()
			h.log.Debug("submit blocked",
				zap.Strings("fields", verr.Fields()),
				zap.String("requestId", reqID),
			)
			return result, err
		}
		h.log.Error("submit failed", zap.Error(err), zap.String("requestId", reqID))
		return result, err
	}

	if result.Applied {
		h.metrics.RecordOperation(result.Op)
	}
	h.log.Info("employee record submitted",
		zap.String("op", result.Op),
		zap.Bool("applied", result.Applied),
		zap.String("employeeId", result.Record.ID),
		zap.String("requestId", reqID),
	)
	return result, nil
}

func (h *Handler) delete(sess *employee.Session, id, reqID string) bool {
	deleted := sess.Store.Delete(id)
	if deleted {
		h.metrics.RecordOperation("delete")
		h.log.Info("employee record deleted", zap.String("employeeId", id), zap.String("requestId", reqID))
	}
	return deleted
}

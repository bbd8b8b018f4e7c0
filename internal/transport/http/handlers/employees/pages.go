package employeehandler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"employeeform/internal/domain/employee"
	"employeeform/internal/transport/http/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"has": slices.Contains[[]string, string],
}).ParseFS(templateFS, "templates/index.html"))

type option struct {
	Value string
	Label string
}

type pageView struct {
	Draft           employee.Draft
	EditMode        bool
	Table           employee.Table
	Issues          map[string]string
	Genders         []option
	ContactMethods  []option
	MaritalStatuses []option
	JoinerOptions   []option
}

var (
	genderOptions  = optionsOf(employee.Genders)
	contactOptions = optionsOf(employee.ContactMethods)
	maritalOptions = optionsOf(append([]string{employee.MaritalSelect}, employee.MaritalStatuses...))
	joinerOptions  = optionsOf(employee.JoinerOptions)
)

func optionsOf(values []string) []option {
	out := make([]option, 0, len(values))
	for _, v := range values {
		out = append(out, option{Value: v, Label: employee.OptionLabel(v)})
	}
	return out
}

// textFields are posted as a single value each; radio groups left unset
// arrive as the empty string.
var textFields = []string{
	employee.FieldFirstName,
	employee.FieldMiddleName,
	employee.FieldLastName,
	employee.FieldGender,
	employee.FieldPhoneNumber,
	employee.FieldMaritalStatus,
	employee.FieldImmediateJoiner,
}

// RegisterPages mounts the server-rendered form and table.
func (h *Handler) RegisterPages(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/", h.handleFormPost)
	r.Post("/clear", h.handleClearPost)
	r.Get("/employees.pdf", h.handleExportPDF)
	r.Post("/employees/{employeeID}/edit", h.handleEditPost)
	r.Post("/employees/{employeeID}/delete", h.handleDeletePost)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, sess, nil)
}

func (h *Handler) handleFormPost(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	for _, field := range textFields {
		_ = sess.Form.SetField(field, r.PostForm.Get(field), true)
	}
	if value, checked := postedContact(r.PostForm[employee.FieldContactMethods], sess.Form.Draft().ContactMethods); checked {
		_ = sess.Form.SetField(employee.FieldContactMethods, value, true)
	} else {
		_ = sess.Form.SetField(employee.FieldContactMethods, "", false)
	}

	if _, err := h.submit(sess, middleware.GetRequestID(r.Context())); err != nil {
		var verr *employee.ValidationError
		if errors.As(err, &verr) {
			issues := make(map[string]string, len(verr.Issues))
			for _, issue := range verr.Issues {
				issues[issue.Field] = issue.Label + " " + issue.Reason
			}
			h.render(w, r, http.StatusUnprocessableEntity, sess, issues)
			return
		}
		http.Error(w, "failed to submit form", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// postedContact picks the single contact method from the checked boxes.
// Browsers post every checked box, so a box newly ticked next to the
// current choice wins over it. Otherwise the last box wins.
func postedContact(posted, current []string) (string, bool) {
	switch len(posted) {
	case 0:
		return "", false
	case 1:
		return posted[0], true
	}
	for i := len(posted) - 1; i >= 0; i-- {
		if !slices.Contains(current, posted[i]) {
			return posted[i], true
		}
	}
	return posted[len(posted)-1], true
}

func (h *Handler) handleClearPost(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	sess.Form.Clear()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleEditPost(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	if _, err := sess.Form.StartEditByID(chi.URLParam(r, "employeeID")); err != nil {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	h.delete(sess, chi.URLParam(r, "employeeID"), middleware.GetRequestID(r.Context()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := employee.WriteTablePDF(&buf, employee.BuildTable(sess.Store.List())); err != nil {
		h.log.Error("pdf export failed", zap.Error(err), zap.String("requestId", middleware.GetRequestID(r.Context())))
		http.Error(w, "failed to export employees", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.pdf"`)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, sess *employee.Session, issues map[string]string) {
	view := pageView{
		Draft:           sess.Form.Draft(),
		EditMode:        sess.Form.EditMode(),
		Table:           employee.BuildTable(sess.Store.List()),
		Issues:          issues,
		Genders:         genderOptions,
		ContactMethods:  contactOptions,
		MaritalStatuses: maritalOptions,
		JoinerOptions:   joinerOptions,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		h.log.Error("render page failed", zap.Error(err), zap.String("requestId", middleware.GetRequestID(r.Context())))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/arbiter/internal/decisions"
	"github.com/JaimeStill/arbiter/pkg/web"
)

const recentLimit = 10

type handler struct {
	sys       decisions.System
	templates *web.TemplateSet
	logger    *slog.Logger
}

func newHandler(sys decisions.System, templates *web.TemplateSet, logger *slog.Logger) *handler {
	return &handler{
		sys:       sys,
		templates: templates,
		logger:    logger.With("handler", "review"),
	}
}

// page renders the review dashboard: submission form, recent decisions,
// and when an id query parameter is present, the selected decision with
// its disposition history.
func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "")
}

// evaluate processes the submission form, runs the evaluation, and
// redirects to the recorded decision. Failures re-render the page with
// an error banner instead of losing the reviewer's place.
func (h *handler) evaluate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, "Could not read the submitted form.")
		return
	}

	cmd := decisions.EvaluateCommand{
		AIOutput:    r.PostFormValue("ai_output"),
		TaskContext: r.PostFormValue("task_context"),
		PolicyMode:  decisions.Mode(r.PostFormValue("policy_mode")),
	}

	decision, err := h.sys.Evaluate(r.Context(), cmd)
	if err != nil {
		h.logger.Error("evaluation failed", "error", err)
		h.render(w, r, evaluateErrorMessage(err))
		return
	}

	http.Redirect(w, r, fmt.Sprintf("%s?id=%d", basePath, decision.ID), http.StatusSeeOther)
}

// dispose records the reviewer's action and returns to the decision.
func (h *handler) dispose(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.render(w, r, "Could not read the submitted form.")
		return
	}

	cmd := decisions.DisposeCommand{
		Action: decisions.Action(r.PostFormValue("action")),
	}
	if notes := r.PostFormValue("notes"); notes != "" {
		cmd.Notes = &notes
	}

	if _, err := h.sys.Dispose(r.Context(), id, cmd); err != nil {
		h.logger.Error("disposition failed", "id", id, "error", err)
		h.render(w, r, "Could not record the disposition: "+err.Error())
		return
	}

	http.Redirect(w, r, fmt.Sprintf("%s?id=%d", basePath, id), http.StatusSeeOther)
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, errMsg string) {
	page := reviewPage{
		Modes:   decisions.Modes(),
		Actions: decisions.Actions(),
		Error:   errMsg,
	}

	if idParam := r.URL.Query().Get("id"); idParam != "" {
		if id, err := strconv.ParseInt(idParam, 10, 64); err == nil {
			if decision, err := h.sys.Find(r.Context(), id); err == nil {
				page.Selected = &decisionView{*decision}

				if history, err := h.sys.Dispositions(r.Context(), id); err == nil {
					page.History = wrapDispositions(history)
				}
			}
		}
	}

	recent, err := h.sys.Recent(r.Context(), recentLimit)
	if err != nil {
		h.logger.Error("load recent decisions failed", "error", err)
	} else {
		page.Recent = wrapDecisions(recent)
	}

	data := web.ViewData{
		Title:    reviewView.Title,
		BasePath: basePath,
		Data:     page,
	}

	if err := h.templates.Render(w, "layout", reviewView.Template, data); err != nil {
		h.logger.Error("render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func evaluateErrorMessage(err error) string {
	switch decisions.MapHTTPStatus(err) {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusBadGateway:
		return "The model gateway could not be reached. Nothing was recorded."
	}
	return "Evaluation failed: " + err.Error()
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/taskboard/pkg/errors"
	"github.com/matzehuels/taskboard/pkg/ready"
	"github.com/matzehuels/taskboard/pkg/render"
)

// stateResponse is the full board view returned by GET /api/state.
type stateResponse struct {
	Title        string                 `json:"title,omitempty"`
	Idle         bool                   `json:"idle"`
	Deadlocked   bool                   `json:"deadlocked"`
	HasSuspended bool                   `json:"has_suspended"`
	Cycle        []string               `json:"cycle,omitempty"`
	Board        ready.Snapshot[string] `json:"board"`
}

// taskResponse describes one task for GET /api/tasks/{id}.
type taskResponse struct {
	ID           string   `json:"id"`
	State        string   `json:"state"`
	Dependencies []string `json:"dependencies"`
	Dependents   []string `json:"dependents"`
}

// createTaskRequest is the body of POST /api/tasks.
type createTaskRequest struct {
	ID     string `json:"id"`
	Hold   bool   `json:"hold,omitempty"`
	Paused bool   `json:"paused,omitempty"`
}

// linkRequest is the body of POST and DELETE /api/links.
type linkRequest struct {
	Dependent  string `json:"dependent"`
	Dependency string `json:"dependency"`
}

// changedResponse reports whether a mutation changed the board.
type changedResponse struct {
	Changed bool `json:"changed"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	resp := stateResponse{
		Title:        s.session.Title(),
		Idle:         s.session.Idle(),
		Deadlocked:   s.session.Deadlocked(),
		HasSuspended: s.session.HasSuspended(),
		Board:        s.session.Snapshot(),
	}
	if resp.Deadlocked {
		resp.Cycle = s.session.Cycle()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, ok := s.session.State(id)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeTaskNotFound, "unknown task %q", id))
		return
	}
	s.writeJSON(w, http.StatusOK, taskResponse{
		ID:           id,
		State:        state.String(),
		Dependencies: s.session.Dependencies(id),
		Dependents:   s.session.Dependents(id),
	})
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if err := errors.ValidateTaskID(req.ID); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Hold && req.Paused {
		s.writeError(w, errors.New(errors.ErrCodeInvalidTask, "task cannot be both held and paused"))
		return
	}

	var changed bool
	if req.Hold {
		changed = s.session.Plan(req.ID)
	} else {
		changed = s.session.Add(req.ID)
	}
	if changed && req.Paused {
		s.session.Suspend(req.ID)
	}
	s.writeJSON(w, http.StatusOK, changedResponse{Changed: changed})
}

func (s *Server) handleTaskAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.session.Has(id) {
		s.writeError(w, errors.New(errors.ErrCodeTaskNotFound, "unknown task %q", id))
		return
	}

	var changed bool
	switch action := chi.URLParam(r, "action"); action {
	case "complete":
		changed = s.session.Complete(id)
	case "sever":
		changed = s.session.Sever(id)
	case "suspend":
		changed = s.session.Suspend(id)
	case "resume":
		changed = s.session.Resume(id)
	case "activate":
		changed = s.session.Activate(id)
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "unknown action %q", action))
		return
	}
	s.writeJSON(w, http.StatusOK, changedResponse{Changed: changed})
}

func (s *Server) decodeLink(w http.ResponseWriter, r *http.Request) (linkRequest, bool) {
	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return req, false
	}
	for _, id := range []string{req.Dependent, req.Dependency} {
		if !s.session.Has(id) {
			s.writeError(w, errors.New(errors.ErrCodeTaskNotFound, "unknown task %q", id))
			return req, false
		}
	}
	return req, true
}

func (s *Server) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeLink(w, r)
	if !ok {
		return
	}
	changed := s.session.Link(req.Dependent, req.Dependency)
	s.writeJSON(w, http.StatusOK, changedResponse{Changed: changed})
}

func (s *Server) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeLink(w, r)
	if !ok {
		return
	}
	changed := s.session.Unlink(req.Dependent, req.Dependency)
	s.writeJSON(w, http.StatusOK, changedResponse{Changed: changed})
}

func (s *Server) handleGraphDOT(w http.ResponseWriter, r *http.Request) {
	dot := render.ToDOT(s.session.Snapshot(), render.Options{Title: s.session.Title()})
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.Write([]byte(dot))
}

func (s *Server) handleGraphSVG(w http.ResponseWriter, r *http.Request) {
	dot := render.ToDOT(s.session.Snapshot(), render.Options{Title: s.session.Title()})
	svg, err := render.SVG(r.Context(), dot)
	if err != nil {
		s.logger.Error("render svg", "err", err)
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render graph"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeTaskNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidTask, errors.ErrCodeInvalidPlan,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidState:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.writeJSON(w, statusFor(code), errorResponse{Code: code, Message: errors.UserMessage(err)})
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/courseapi/internal/application/courses"
	"github.com/amirhosseinghanipour/courseapi/internal/domain"
	domerrors "github.com/amirhosseinghanipour/courseapi/internal/domain/errors"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/http/middleware"
	"github.com/amirhosseinghanipour/courseapi/internal/validation"
)

// CoursesHandler handles /api/courses. Reads are public; mutations sit
// behind the basic-auth middleware and the ownership checks in the
// usecases.
type CoursesHandler struct {
	list   *courses.ListCourses
	get    *courses.GetCourse
	create *courses.CreateCourse
	update *courses.UpdateCourse
	remove *courses.DeleteCourse
	errorReporter
}

func NewCoursesHandler(list *courses.ListCourses, get *courses.GetCourse, create *courses.CreateCourse, update *courses.UpdateCourse, remove *courses.DeleteCourse, log zerolog.Logger, logErrors bool) *CoursesHandler {
	return &CoursesHandler{
		list:          list,
		get:           get,
		create:        create,
		update:        update,
		remove:        remove,
		errorReporter: errorReporter{log: log, logErrors: logErrors},
	}
}

type courseResponse struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	EstimatedTime   string       `json:"estimatedTime,omitempty"`
	MaterialsNeeded string       `json:"materialsNeeded,omitempty"`
	UserID          int64        `json:"userId"`
	User            userResponse `json:"user"`
}

func toCourseResponse(c domain.CourseWithOwner) courseResponse {
	return courseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
		User: userResponse{
			ID:           c.Owner.ID,
			FirstName:    c.Owner.FirstName,
			LastName:     c.Owner.LastName,
			EmailAddress: c.Owner.EmailAddress,
		},
	}
}

// courseRequest keeps the optional fields as pointers so an update can
// tell an omitted field apart from one set to the empty string.
type courseRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// List returns all courses with their owner projections.
func (h *CoursesHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.list.Execute(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	items := make([]courseResponse, 0, len(all))
	for _, c := range all {
		items = append(items, toCourseResponse(c))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"courses": items})
}

// Get returns one course by id, or 404.
func (h *CoursesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}
	course, err := h.get.Execute(r.Context(), id)
	if err != nil {
		h.courseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"course": toCourseResponse(*course)})
}

// Create persists a course owned by the authenticated user.
func (h *CoursesHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}
	body, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}
	created, err := h.create.Execute(r.Context(), courses.CreateCourseInput{
		Title:           body.Title,
		Description:     body.Description,
		EstimatedTime:   stringValue(body.EstimatedTime),
		MaterialsNeeded: stringValue(body.MaterialsNeeded),
		OwnerID:         user.ID,
	})
	if err != nil {
		h.serverError(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("api/courses/%d", created.ID))
	w.WriteHeader(http.StatusCreated)
}

// Update replaces the course's fields if the authenticated user owns it.
func (h *CoursesHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}
	body, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}
	id, ok := courseID(w, r)
	if !ok {
		return
	}
	err := h.update.Execute(r.Context(), courses.UpdateCourseInput{
		ID:              id,
		Title:           body.Title,
		Description:     body.Description,
		EstimatedTime:   body.EstimatedTime,
		MaterialsNeeded: body.MaterialsNeeded,
		ActorID:         user.ID,
	})
	if err != nil {
		h.courseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes the course if the authenticated user owns it.
func (h *CoursesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}
	id, ok := courseID(w, r)
	if !ok {
		return
	}
	if err := h.remove.Execute(r.Context(), id, user.ID); err != nil {
		h.courseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeAndValidate parses the body and runs the course rule set, writing
// the failure response itself. The second return is false when the caller
// must stop.
func (h *CoursesHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request) (courseRequest, bool) {
	var body courseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return body, false
	}
	msgs := validation.Check("course", map[string]string{
		"title":       body.Title,
		"description": body.Description,
	})
	if len(msgs) > 0 {
		writeValidationErrors(w, msgs)
		return body, false
	}
	return body, true
}

// courseID parses the {id} path parameter. Non-numeric ids identify no
// resource, so they answer 404 like a missing course.
func courseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Page not found")
		return 0, false
	}
	return id, true
}

func (h *CoursesHandler) courseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domerrors.ErrCourseNotFound):
		writeMessage(w, http.StatusNotFound, "Page not found")
	case errors.Is(err, domerrors.ErrNotOwner):
		writeMessage(w, http.StatusForbidden, "Access Forbidden")
	default:
		h.serverError(w, err)
	}
}

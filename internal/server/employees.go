package server

import (
	"net/http"

	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/employee"
)

type employeeHandler struct {
	svc employee.Service
}

type employeeRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
}

type employeePatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type employeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toEmployeeResponse(e *employee.Employee) employeeResponse {
	return employeeResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		Email:     e.Email,
		BirthDate: e.BirthDate.String(),
		CreatedAt: e.CreatedAt.String(),
		UpdatedAt: e.UpdatedAt.String(),
	}
}

func (h *employeeHandler) create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	birthDate, err := codec.ParseDate(req.BirthDate)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	e, err := h.svc.Hire(r.Context(), req.Name, req.Email, birthDate)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeResponse(e))
}

func (h *employeeHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeResponse(e))
}

func (h *employeeHandler) list(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *employeeHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch employeePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	e, err := h.svc.Update(r.Context(), id, employee.UpdateParams{Name: patch.Name, Email: patch.Email})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeResponse(e))
}

func (h *employeeHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

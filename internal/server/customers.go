package server

import (
	"net/http"

	"coffeeshop-be/internal/customer"
)

type customerHandler struct {
	svc customer.Service
}

type customerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type customerPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type customerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toCustomerResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.String(),
		UpdatedAt: c.UpdatedAt.String(),
	}
}

func (h *customerHandler) create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.svc.Register(r.Context(), req.Name, req.Email)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerResponse(c))
}

func (h *customerHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

func (h *customerHandler) list(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *customerHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch customerPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	c, err := h.svc.Update(r.Context(), id, customer.UpdateParams{Name: patch.Name, Email: patch.Email})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

func (h *customerHandler) delete(w http.ResponseWriter, r *http.Request) {
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

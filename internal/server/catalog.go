package server

import (
	"net/http"

	"coffeeshop-be/internal/catalog"
	"coffeeshop-be/internal/codec"
)

type catalogHandler struct {
	svc catalog.Service
}

type drinkRequest struct {
	Name      string `json:"name"`
	BasePrice string `json:"base_price"`
}

type drinkResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice string `json:"base_price"`
}

func toDrinkResponse(d *catalog.Drink) drinkResponse {
	return drinkResponse{ID: d.ID.String(), Name: d.Name, BasePrice: d.BasePrice.String()}
}

type extraRequest struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	IsAvailable *bool  `json:"is_available"`
}

type extraResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	IsAvailable bool   `json:"is_available"`
}

func toExtraResponse(e *catalog.Extra) extraResponse {
	return extraResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Price:       e.Price.String(),
		IsAvailable: bool(e.IsAvailable),
	}
}

func (h *catalogHandler) createDrink(w http.ResponseWriter, r *http.Request) {
	var req drinkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	basePrice, err := codec.MoneyFromString(req.BasePrice)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	d, err := h.svc.AddDrink(r.Context(), req.Name, basePrice)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDrinkResponse(d))
}

func (h *catalogHandler) getDrink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.GetDrink(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDrinkResponse(d))
}

func (h *catalogHandler) listDrinks(w http.ResponseWriter, r *http.Request) {
	drinks, err := h.svc.ListDrinks(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out := make([]drinkResponse, 0, len(drinks))
	for _, d := range drinks {
		out = append(out, toDrinkResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *catalogHandler) createExtra(w http.ResponseWriter, r *http.Request) {
	var req extraRequest
	if !decodeBody(w, r, &req) {
		return
	}

	price, err := codec.MoneyFromString(req.Price)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	// Extras default to available, matching the catalog's insert default.
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	e, err := h.svc.AddExtra(r.Context(), req.Name, price, available)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExtraResponse(e))
}

func (h *catalogHandler) getExtra(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	e, err := h.svc.GetExtra(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExtraResponse(e))
}

func (h *catalogHandler) listExtras(w http.ResponseWriter, r *http.Request) {
	availableOnly := r.URL.Query().Get("available") == "true"

	extras, err := h.svc.ListExtras(r.Context(), availableOnly)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out := make([]extraResponse, 0, len(extras))
	for _, e := range extras {
		out = append(out, toExtraResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

package server

import (
	"net/http"

	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/order"

	"github.com/google/uuid"
)

type orderHandler struct {
	svc order.Service
}

type orderItemRequest struct {
	DrinkID  string   `json:"drink_id"`
	Size     string   `json:"size"`
	ExtraIDs []string `json:"extra_ids"`
}

type orderRequest struct {
	CustomerID string             `json:"customer_id"`
	EmployeeID string             `json:"employee_id"`
	Items      []orderItemRequest `json:"items"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type orderItemResponse struct {
	ID         string   `json:"id"`
	DrinkID    string   `json:"drink_id"`
	Size       string   `json:"size"`
	TotalPrice string   `json:"total_price"`
	ExtraIDs   []string `json:"extra_ids,omitempty"`
}

type orderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	EmployeeID string              `json:"employee_id"`
	Status     string              `json:"status"`
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
	Items      []orderItemResponse `json:"items,omitempty"`
}

type breakdownResponse struct {
	ItemTotals []string `json:"item_totals"`
	Total      string   `json:"total"`
}

type createOrderResponse struct {
	Order     orderResponse     `json:"order"`
	Breakdown breakdownResponse `json:"price_breakdown"`
}

func toOrderResponse(o *order.Order) orderResponse {
	resp := orderResponse{
		ID:         o.ID.String(),
		CustomerID: o.CustomerID.String(),
		EmployeeID: o.EmployeeID.String(),
		Status:     o.Status.String(),
		CreatedAt:  o.CreatedAt.String(),
		UpdatedAt:  o.UpdatedAt.String(),
	}
	for _, item := range o.Items {
		extraIDs := make([]string, 0, len(item.ExtraIDs))
		for _, id := range item.ExtraIDs {
			extraIDs = append(extraIDs, id.String())
		}
		resp.Items = append(resp.Items, orderItemResponse{
			ID:         item.ID.String(),
			DrinkID:    item.DrinkID.String(),
			Size:       item.Size.String(),
			TotalPrice: item.TotalPrice.String(),
			ExtraIDs:   extraIDs,
		})
	}
	return resp
}

func (h *orderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	createReq, err := parseOrderRequest(req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	o, breakdown, err := h.svc.Create(r.Context(), createReq)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	itemTotals := make([]string, 0, len(breakdown.ItemTotals))
	for _, t := range breakdown.ItemTotals {
		itemTotals = append(itemTotals, t.String())
	}

	writeJSON(w, http.StatusCreated, createOrderResponse{
		Order:     toOrderResponse(o),
		Breakdown: breakdownResponse{ItemTotals: itemTotals, Total: breakdown.Total.String()},
	})
}

func parseOrderRequest(req orderRequest) (order.CreateRequest, error) {
	customerID, err := codec.ParseID(req.CustomerID)
	if err != nil {
		return order.CreateRequest{}, err
	}
	employeeID, err := codec.ParseID(req.EmployeeID)
	if err != nil {
		return order.CreateRequest{}, err
	}

	items := make([]order.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		drinkID, err := codec.ParseID(item.DrinkID)
		if err != nil {
			return order.CreateRequest{}, err
		}
		size, err := order.ParseDrinkSize(item.Size)
		if err != nil {
			return order.CreateRequest{}, err
		}

		extraIDs := make([]uuid.UUID, 0, len(item.ExtraIDs))
		for _, raw := range item.ExtraIDs {
			extraID, err := codec.ParseID(raw)
			if err != nil {
				return order.CreateRequest{}, err
			}
			extraIDs = append(extraIDs, extraID)
		}

		items = append(items, order.ItemRequest{DrinkID: drinkID, Size: size, ExtraIDs: extraIDs})
	}

	return order.CreateRequest{CustomerID: customerID, EmployeeID: employeeID, Items: items}, nil
}

func (h *orderHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

func (h *orderHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *orderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), id, status)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

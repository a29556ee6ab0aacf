package server

import (
	"net/http"

	"coffeeshop-be/internal/catalog"
	"coffeeshop-be/internal/customer"
	"coffeeshop-be/internal/employee"
	"coffeeshop-be/internal/order"
)

// New builds the REST router over the domain services.
func New(
	customerSvc customer.Service,
	employeeSvc employee.Service,
	catalogSvc catalog.Service,
	orderSvc order.Service,
) http.Handler {
	customers := &customerHandler{svc: customerSvc}
	employees := &employeeHandler{svc: employeeSvc}
	menu := &catalogHandler{svc: catalogSvc}
	orders := &orderHandler{svc: orderSvc}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /customers", customers.create)
	mux.HandleFunc("GET /customers", customers.list)
	mux.HandleFunc("GET /customers/{id}", customers.get)
	mux.HandleFunc("PATCH /customers/{id}", customers.update)
	mux.HandleFunc("DELETE /customers/{id}", customers.delete)

	mux.HandleFunc("POST /employees", employees.create)
	mux.HandleFunc("GET /employees", employees.list)
	mux.HandleFunc("GET /employees/{id}", employees.get)
	mux.HandleFunc("PATCH /employees/{id}", employees.update)
	mux.HandleFunc("DELETE /employees/{id}", employees.delete)

	mux.HandleFunc("POST /drinks", menu.createDrink)
	mux.HandleFunc("GET /drinks", menu.listDrinks)
	mux.HandleFunc("GET /drinks/{id}", menu.getDrink)

	mux.HandleFunc("POST /extras", menu.createExtra)
	mux.HandleFunc("GET /extras", menu.listExtras)
	mux.HandleFunc("GET /extras/{id}", menu.getExtra)

	mux.HandleFunc("POST /orders", orders.create)
	mux.HandleFunc("GET /orders", orders.list)
	mux.HandleFunc("GET /orders/{id}", orders.get)
	mux.HandleFunc("POST /orders/{id}/status", orders.updateStatus)

	return mux
}

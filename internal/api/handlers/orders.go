package handlers

import (
	"fruit-order-service/internal/api/dto"
	"fruit-order-service/internal/domain"
	"fruit-order-service/internal/services"
	"net/http"
	"strconv"
	"strings"
)

// OrderHandler exposes order placement, lookup and weight correction endpoints.
type OrderHandler struct {
	Service *services.OrderService
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Fruits) == 0 {
		writeError(w, r, http.StatusBadRequest, "fruits must not be empty")
		return
	}

	inputs := make([]services.FruitInput, 0, len(req.Fruits))
	for _, f := range req.Fruits {
		inputs = append(inputs, fruitInput(f))
	}

	order, err := h.Service.PlaceOrder(r.Context(), inputs)
	if err != nil {
		writeDomainError(w, r, "place order", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, orderResponse(order))
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.ListOrders(r.Context())
	if err != nil {
		writeDomainError(w, r, "list orders", err)
		return
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, orderResponse(o))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.Service.GetOrder(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, "get order", err)
		return
	}

	writeJSON(w, r, http.StatusOK, orderResponse(order))
}

// CorrectFruit replaces one fruit line with a re-measured one.
func (h *OrderHandler) CorrectFruit(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "fruit index must be an integer")
		return
	}

	var req dto.FruitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.Service.CorrectFruit(r.Context(), id, index, fruitInput(req))
	if err != nil {
		writeDomainError(w, r, "correct fruit", err)
		return
	}

	writeJSON(w, r, http.StatusOK, orderResponse(order))
}

// Totals sums the order's weights in the unit given by ?unit= (default Kilograms).
func (h *OrderHandler) Totals(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	unit := domain.Kilograms
	if raw := strings.TrimSpace(r.URL.Query().Get("unit")); raw != "" {
		u, err := domain.ParseUnit(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		unit = u
	}

	order, err := h.Service.GetOrder(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, "order totals", err)
		return
	}

	totals, err := services.Totals(order, unit)
	if err != nil {
		writeDomainError(w, r, "order totals", err)
		return
	}

	res := dto.TotalsResponse{OrderID: order.ID.String(), Unit: string(totals.Unit)}
	for _, leg := range []struct {
		dst **dto.WeightResponse
		src *domain.Weight
	}{
		{&res.Net, totals.Net},
		{&res.Tare, totals.Tare},
		{&res.Gross, totals.Gross},
	} {
		if leg.src != nil {
			v := weightResponse(*leg.src)
			*leg.dst = &v
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func orderID(w http.ResponseWriter, r *http.Request) (domain.OrderID, bool) {
	id, err := domain.ParseOrderID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid order id")
		return domain.OrderID{}, false
	}
	return id, true
}

func fruitInput(f dto.FruitRequest) services.FruitInput {
	in := services.FruitInput{
		FruitType: f.FruitType,
		Net:       services.MeasureInput{Value: f.Net.Value, Unit: f.Net.Unit},
	}
	if f.Tare != nil {
		in.Tare = &services.MeasureInput{Value: f.Tare.Value, Unit: f.Tare.Unit}
	}
	return in
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/usecases"
	"github.com/storecraft/storefront/internal/usecases/commands"
	"github.com/storecraft/storefront/internal/usecases/queries"
)

const (
	msgOrderNotFound    = "order not found"
	msgInvalidOrderID   = "invalid order ID"
	msgOrderAlreadyPaid = "order is already paid"
)

type (
	lineItemData struct {
		Name      string `json:"name"`
		Quantity  uint   `json:"quantity"`
		UnitPrice int64  `json:"unitPrice"`
		Subtotal  int64  `json:"subtotal"`
	}

	orderLinks struct {
		Self *string `json:"self,omitempty"`
	}

	orderData struct {
		ID         string         `json:"id"`
		Status     string         `json:"status"`
		Items      []lineItemData `json:"items"`
		TotalPrice int64          `json:"totalPrice"`
		CreatedAt  time.Time      `json:"createdAt"`
		PaidAt     *time.Time     `json:"paidAt,omitempty"`
		Links      *orderLinks    `json:"links,omitempty"`
	}

	placeOrderItemRequest struct {
		Name      string `json:"name"`
		Quantity  uint   `json:"quantity"`
		UnitPrice int64  `json:"unitPrice"`
	}

	placeOrderRequest struct {
		Items []placeOrderItemRequest `json:"items"`
	}

	payOrderRequest struct {
		Method       string `json:"method"`
		SecurityCode string `json:"securityCode,omitempty"`
		Email        string `json:"email,omitempty"`
	}

	OrderHandler struct {
		app *usecases.Application
	}
)

func NewOrderHandler(app *usecases.Application) *OrderHandler {
	return &OrderHandler{app: app}
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)

		return
	}

	items := make([]model.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.LineItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order, err := h.app.Commands.PlaceOrder.Handle(r.Context(), commands.PlaceOrderCommand{Items: items})
	if err != nil {
		if errors.Is(err, model.ErrEmptyOrder) {
			writeErrorResponse(w, r, http.StatusUnprocessableEntity, codeValidation, err.Error())

			return
		}

		writeErrorResponse(w, r, http.StatusInternalServerError, codeInternalError, err.Error())

		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/orders/%s", order.ID.String()))
	writeEnveloped(w, r, http.StatusCreated, toOrderData(order), nil)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseOrderID(chi.URLParam(r, "orderID"))
	if err != nil {
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidID, msgInvalidOrderID)

		return
	}

	order, err := h.app.Queries.GetOrder.Execute(r.Context(), queries.GetOrderQuery{ID: id})
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			writeErrorResponse(w, r, http.StatusNotFound, codeNotFound, msgOrderNotFound)

			return
		}

		writeErrorResponse(w, r, http.StatusInternalServerError, codeInternalError, err.Error())

		return
	}

	writeEnveloped(w, r, http.StatusOK, toOrderData(order), nil)
}

func (h *OrderHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseOrderID(chi.URLParam(r, "orderID"))
	if err != nil {
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidID, msgInvalidOrderID)

		return
	}

	var req payOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)

		return
	}

	method, err := model.ParsePaymentMethod(req.Method)
	if err != nil {
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidQuery,
			fmt.Sprintf("unknown payment method: %s", req.Method))

		return
	}

	cmd := commands.PayOrderCommand{
		OrderID:      id,
		Method:       method,
		SecurityCode: req.SecurityCode,
		Email:        req.Email,
	}

	order, err := h.app.Commands.PayOrder.Handle(r.Context(), cmd)
	if err != nil {
		handlePaymentError(w, r, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toOrderData(order), nil)
}

func handlePaymentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrOrderNotFound):
		writeErrorResponse(w, r, http.StatusNotFound, codeNotFound, msgOrderNotFound)
	case errors.Is(err, model.ErrOrderAlreadyPaid):
		writeErrorResponse(w, r, http.StatusConflict, codeConflict, msgOrderAlreadyPaid)
	case errors.Is(err, model.ErrUnknownMethod):
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidQuery, err.Error())
	case errors.Is(err, model.ErrPaymentDeclined):
		writeErrorResponse(w, r, http.StatusPaymentRequired, codePayment, err.Error())
	default:
		writeErrorResponse(w, r, http.StatusInternalServerError, codeInternalError, err.Error())
	}
}

func toOrderData(order *model.Order) orderData {
	selfLink := fmt.Sprintf("/v1/orders/%s", order.ID.String())

	items := make([]lineItemData, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, lineItemData{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}

	return orderData{
		ID:         order.ID.String(),
		Status:     order.Status.String(),
		Items:      items,
		TotalPrice: order.TotalPrice(),
		CreatedAt:  order.CreatedAt,
		PaidAt:     order.PaidAt,
		Links:      &orderLinks{Self: &selfLink},
	}
}

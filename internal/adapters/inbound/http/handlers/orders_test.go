package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storecraft/storefront/internal/adapters/inbound/http/handlers"
	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	suite.Suite
}

func TestOrderHandlerTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestPlaceOrder_Success() {
	s.T().Parallel()

	handler := handlers.NewOrderHandler(newTestApp(newTestServices()))

	body, _ := json.Marshal(map[string]any{
		"items": []map[string]any{
			{"name": "Blue Shirt", "quantity": 2, "unitPrice": 1999},
			{"name": "Red Sock", "quantity": 1, "unitPrice": 499},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.PlaceOrder(rec, req)

	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Require().NotEmpty(rec.Header().Get("Location"))

	var response struct {
		Data struct {
			Status     string `json:"status"`
			TotalPrice int64  `json:"totalPrice"`
			Items      []struct {
				Subtotal int64 `json:"subtotal"`
			} `json:"items"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Equal("open", response.Data.Status)
	s.Require().Equal(int64(2*1999+499), response.Data.TotalPrice)
	s.Require().Len(response.Data.Items, 2)
	s.Require().Equal(int64(3998), response.Data.Items[0].Subtotal)
}

func (s *OrderHandlerTestSuite) TestPlaceOrder_Empty() {
	s.T().Parallel()

	svcs := newTestServices()
	svcs.checkout.placeOrderFn = func(_ context.Context, _ []model.LineItem) (*model.Order, error) {
		return nil, model.ErrEmptyOrder
	}
	handler := handlers.NewOrderHandler(newTestApp(svcs))

	body, _ := json.Marshal(map[string]any{"items": []map[string]any{}})

	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.PlaceOrder(rec, req)

	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *OrderHandlerTestSuite) TestPlaceOrder_InvalidJSON() {
	s.T().Parallel()

	handler := handlers.NewOrderHandler(newTestApp(newTestServices()))

	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	handler.PlaceOrder(rec, req)

	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) TestGetOrder_Success() {
	s.T().Parallel()

	id := model.NewOrderID()
	handler := handlers.NewOrderHandler(newTestApp(newTestServices()))

	req := newRequestWithURLParam(http.MethodGet, "/v1/orders/"+id.String(), "orderID", id.String(), nil)
	rec := httptest.NewRecorder()

	handler.GetOrder(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var response struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Equal(id.String(), response.Data.ID)
}

func (s *OrderHandlerTestSuite) TestGetOrder_NotFound() {
	s.T().Parallel()

	id := model.NewOrderID()
	svcs := newTestServices()
	svcs.checkout.getOrderFn = func(_ context.Context, _ model.OrderID) (*model.Order, error) {
		return nil, model.ErrOrderNotFound
	}
	handler := handlers.NewOrderHandler(newTestApp(svcs))

	req := newRequestWithURLParam(http.MethodGet, "/v1/orders/"+id.String(), "orderID", id.String(), nil)
	rec := httptest.NewRecorder()

	handler.GetOrder(rec, req)

	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *OrderHandlerTestSuite) TestPayOrder_Success() {
	s.T().Parallel()

	id := model.NewOrderID()
	var gotMethod model.PaymentMethod
	var gotCode string

	svcs := newTestServices()
	svcs.checkout.payOrderFn = func(_ context.Context, orderID model.OrderID, method model.PaymentMethod, securityCode, _ string) (*model.Order, error) {
		gotMethod = method
		gotCode = securityCode

		order := model.NewOrder()
		order.ID = orderID
		order.AddItem("Blue Shirt", 1, 1999)
		s.Require().NoError(order.MarkPaid())

		return order, nil
	}
	handler := handlers.NewOrderHandler(newTestApp(svcs))

	body, _ := json.Marshal(map[string]any{"method": "debit", "securityCode": "252627"})

	req := newRequestWithURLParam(http.MethodPost, "/v1/orders/"+id.String()+"/payment", "orderID", id.String(), bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.PayOrder(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal(model.PaymentMethodDebit, gotMethod)
	s.Require().Equal("252627", gotCode)

	var response struct {
		Data struct {
			Status string  `json:"status"`
			PaidAt *string `json:"paidAt"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Equal("paid", response.Data.Status)
	s.Require().NotNil(response.Data.PaidAt)
}

func (s *OrderHandlerTestSuite) TestPayOrder_UnknownMethod() {
	s.T().Parallel()

	id := model.NewOrderID()
	handler := handlers.NewOrderHandler(newTestApp(newTestServices()))

	body, _ := json.Marshal(map[string]any{"method": "bitcoin"})

	req := newRequestWithURLParam(http.MethodPost, "/v1/orders/"+id.String()+"/payment", "orderID", id.String(), bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.PayOrder(rec, req)

	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) TestPayOrder_ErrorMapping() {
	s.T().Parallel()

	cases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "order not found maps to 404",
			serviceErr:     model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "already paid maps to 409",
			serviceErr:     model.ErrOrderAlreadyPaid,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "declined maps to 402",
			serviceErr:     model.ErrPaymentDeclined,
			expectedStatus: http.StatusPaymentRequired,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			id := model.NewOrderID()
			svcs := newTestServices()
			svcs.checkout.payOrderFn = func(_ context.Context, _ model.OrderID, _ model.PaymentMethod, _, _ string) (*model.Order, error) {
				return nil, tc.serviceErr
			}
			handler := handlers.NewOrderHandler(newTestApp(svcs))

			body, _ := json.Marshal(map[string]any{"method": "credit", "securityCode": "111111"})

			req := newRequestWithURLParam(http.MethodPost, "/v1/orders/"+id.String()+"/payment", "orderID", id.String(), bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.PayOrder(rec, req)

			s.Require().Equal(tc.expectedStatus, rec.Code)
		})
	}
}

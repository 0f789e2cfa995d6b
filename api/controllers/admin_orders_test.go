package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/teruzahostel/minimarket-backend/internal/orders"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
)

type stubOrderService struct {
	page      *orders.OrderPageDTO
	order     *orders.OrderDTO
	result    *orders.DeleteResultDTO
	err       error
	lastInput orders.ListOrdersInput
}

func (s *stubOrderService) List(ctx context.Context, input orders.ListOrdersInput) (*orders.OrderPageDTO, error) {
	s.lastInput = input
	return s.page, s.err
}

func (s *stubOrderService) Get(ctx context.Context, id uuid.UUID) (*orders.OrderDTO, error) {
	return s.order, s.err
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, input orders.UpdateStatusInput) (*orders.OrderDTO, error) {
	return s.order, s.err
}

func (s *stubOrderService) Delete(ctx context.Context, id uuid.UUID) (*orders.DeleteResultDTO, error) {
	return s.result, s.err
}

func TestAdminListOrdersForwardsQuery(t *testing.T) {
	stub := &stubOrderService{page: &orders.OrderPageDTO{Orders: []orders.OrderDTO{}}}
	handler := AdminListOrders(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders?status=pending&limit=10&cursor=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if stub.lastInput.Status != "pending" || stub.lastInput.Limit != 10 || stub.lastInput.Cursor != "abc" {
		t.Fatalf("query not forwarded: %+v", stub.lastInput)
	}
}

func TestAdminListOrdersRejectsBadLimit(t *testing.T) {
	handler := AdminListOrders(&stubOrderService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders?limit=ten", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminUpdateOrderStatusSuccess(t *testing.T) {
	orderID := uuid.New()
	stub := &stubOrderService{order: &orders.OrderDTO{ID: orderID, Status: enums.OrderStatusConfirmed}}
	handler := AdminUpdateOrderStatus(stub, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/admin/orders/"+orderID.String()+"/status", strings.NewReader(`{"status":"confirmed"}`)),
		"id", orderID.String(),
	)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data orders.OrderDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != enums.OrderStatusConfirmed {
		t.Fatalf("unexpected status: %s", envelope.Data.Status)
	}
}

func TestAdminUpdateOrderStatusBlockedTransition(t *testing.T) {
	orderID := uuid.New()
	stub := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "cannot move from completed to pending")}
	handler := AdminUpdateOrderStatus(stub, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/admin/orders/"+orderID.String()+"/status", strings.NewReader(`{"status":"pending"}`)),
		"id", orderID.String(),
	)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

func TestAdminDeleteOrderReportsCascade(t *testing.T) {
	orderID := uuid.New()
	stub := &stubOrderService{result: &orders.DeleteResultDTO{DeletedAnalyticsCount: 3}}
	handler := AdminDeleteOrder(stub, nil)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/admin/orders/"+orderID.String(), nil), "id", orderID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data orders.DeleteResultDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.DeletedAnalyticsCount != 3 {
		t.Fatalf("unexpected cascade count: %d", envelope.Data.DeletedAnalyticsCount)
	}
}

func TestAdminGetOrderRejectsBadID(t *testing.T) {
	handler := AdminGetOrder(&stubOrderService{}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/admin/orders/xyz", nil), "id", "xyz")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

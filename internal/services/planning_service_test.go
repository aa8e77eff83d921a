package services

import (
	"testing"
	"time"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
)

func newPlanningFixture(orders ...*models.Order) (PlanningService, *stubOrderRepo, *stubLineItemRepo, *stubPaymentTermRepo) {
	orderRepo := newStubOrderRepo(orders...)
	lineItemRepo := newStubLineItemRepo(orderRepo)
	paymentTermRepo := &stubPaymentTermRepo{
		sentinel: &models.PaymentTerm{ID: "pt-sentinel", Label: "no advance amount"},
	}
	svc := NewPlanningService(orderRepo, lineItemRepo, paymentTermRepo, "no advance amount")
	return svc, orderRepo, lineItemRepo, paymentTermRepo
}

func TestListOrdersFiltersBySentinel(t *testing.T) {
	svc, orderRepo, _, _ := newPlanningFixture()
	orderRepo.planningOrders = []models.Order{{ID: "o1"}}

	orders, err := svc.ListOrders()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orderRepo.planningSentinel != "pt-sentinel" {
		t.Fatalf("expected sentinel id to drive the filter, got %q", orderRepo.planningSentinel)
	}
}

func TestAddDeadlinesDerivesOrderDeadline(t *testing.T) {
	order := &models.Order{ID: "o1", ApprovedByCustomer: true, Version: 1}
	svc, orderRepo, lineItemRepo, _ := newPlanningFixture(order)
	lineItemRepo.items["o1"] = []models.LineItem{
		{ID: "li1", OrderID: "o1"},
		{ID: "li2", OrderID: "o1"},
	}

	early := time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC)
	late := time.Date(2026, 9, 20, 14, 0, 0, 0, time.UTC)

	updated, err := svc.AddDeadlines("o1", []DeadlineInput{
		{LineItemID: "li1", DeadLine: late},
		{LineItemID: "li2", DeadLine: early},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.DeadLine == nil {
		t.Fatal("expected order deadline to be set")
	}
	want := time.Date(2026, 9, 20, 23, 59, 59, 0, time.UTC)
	if !updated.DeadLine.Equal(want) {
		t.Fatalf("expected deadline %s, got %s", want, updated.DeadLine)
	}
	if !updated.ApprovedByPlanning {
		t.Fatal("expected approved_by_planning to be set")
	}
	if orderRepo.updates != 1 {
		t.Fatalf("expected a single order write, got %d", orderRepo.updates)
	}
}

func TestAddDeadlinesRejectsUnknownLineItem(t *testing.T) {
	order := &models.Order{ID: "o1", ApprovedByCustomer: true, Version: 1}
	svc, orderRepo, lineItemRepo, _ := newPlanningFixture(order)
	lineItemRepo.items["o1"] = []models.LineItem{{ID: "li1", OrderID: "o1"}}

	_, err := svc.AddDeadlines("o1", []DeadlineInput{
		{LineItemID: "li1", DeadLine: time.Now()},
		{LineItemID: "not-mine", DeadLine: time.Now()},
	})
	if err == nil {
		t.Fatal("expected error for a foreign line item")
	}
	apiErr, ok := err.(*apierror.APIError)
	if !ok || apiErr.Code != apierror.CodeInvalidID {
		t.Fatalf("expected invalid id, got %v", err)
	}
	if orderRepo.updates != 0 {
		t.Fatal("nothing may be written when any entry is invalid")
	}
	if lineItemRepo.items["o1"][0].DeadLine != nil {
		t.Fatal("valid entries must not be written when the batch fails")
	}
}

func TestAddDeadlinesRequiresCustomerApproval(t *testing.T) {
	order := &models.Order{ID: "o1", ApprovedByCustomer: false, Version: 1}
	svc, _, lineItemRepo, _ := newPlanningFixture(order)
	lineItemRepo.items["o1"] = []models.LineItem{{ID: "li1", OrderID: "o1"}}

	_, err := svc.AddDeadlines("o1", []DeadlineInput{{LineItemID: "li1", DeadLine: time.Now()}})
	if err == nil {
		t.Fatal("expected error while order is not customer approved")
	}
}

func TestAddDeadlinesRequiresEntries(t *testing.T) {
	order := &models.Order{ID: "o1", ApprovedByCustomer: true}
	svc, _, _, _ := newPlanningFixture(order)

	if _, err := svc.AddDeadlines("o1", nil); err == nil {
		t.Fatal("expected error for an empty batch")
	}
}

package services

import (
	"testing"
	"time"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/workflow"

	"github.com/shopspring/decimal"
)

func newSalesFixture(orders ...*models.Order) (SalesService, *stubOrderRepo, *stubLineItemRepo, *stubRelationRepo) {
	orderRepo := newStubOrderRepo(orders...)
	lineItemRepo := newStubLineItemRepo(orderRepo)
	relationRepo := newStubRelationRepo()
	svc := NewSalesService(orderRepo, lineItemRepo, relationRepo)
	return svc, orderRepo, lineItemRepo, relationRepo
}

func assignedOrder(id string) *models.Order {
	return &models.Order{
		ID:                     id,
		CustomerID:             "d1",
		SalesNegotiationStatus: string(workflow.NegotiationAssigned),
		Version:                1,
	}
}

func activeRelation(orderID string) *models.SalesExecOrderRelation {
	return &models.SalesExecOrderRelation{
		SalesExecutiveID: "se1",
		OrderID:          orderID,
		IsActive:         true,
	}
}

func TestAddLineItemsAggregatesOrder(t *testing.T) {
	svc, orderRepo, lineItemRepo, relationRepo := newSalesFixture(assignedOrder("o1"))
	relationRepo.salesRels["o1"] = activeRelation("o1")

	items := []LineItemInput{
		{UOM: "NOS", MotorType: "5HP", HeadSize: "30", Price: decimal.NewFromInt(1000), Quantity: 2},
		{UOM: "NOS", MotorType: "7HP", HeadSize: "50", Price: decimal.NewFromInt(1500), Quantity: 1},
	}

	order, err := svc.AddLineItems("se1", "o1", items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantPrice := decimal.NewFromInt(2500)
	if !order.Price.Equal(wantPrice) {
		t.Fatalf("expected aggregated price %s, got %s", wantPrice, order.Price)
	}
	if order.Quantity != 3 {
		t.Fatalf("expected aggregated quantity 3, got %d", order.Quantity)
	}
	if order.SalesNegotiationStatus != string(workflow.NegotiationPendingAcceptance) {
		t.Fatalf("expected PENDING ACCEPTANCE, got %s", order.SalesNegotiationStatus)
	}
	if !order.ApprovedBySales {
		t.Fatal("expected approved_by_sales to be set")
	}
	if len(lineItemRepo.items["o1"]) != 2 {
		t.Fatalf("expected 2 stored line items, got %d", len(lineItemRepo.items["o1"]))
	}
	if !relationRepo.salesRels["o1"].IsUnderProcess {
		t.Fatal("expected relation flagged under process")
	}
	if orderRepo.updates != 1 {
		t.Fatalf("expected a single order write, got %d", orderRepo.updates)
	}
}

func TestAddLineItemsValidatesBatchBeforeWriting(t *testing.T) {
	svc, orderRepo, lineItemRepo, relationRepo := newSalesFixture(assignedOrder("o1"))
	relationRepo.salesRels["o1"] = activeRelation("o1")

	items := []LineItemInput{
		{UOM: "NOS", MotorType: "5HP", HeadSize: "30", Price: decimal.NewFromInt(1000), Quantity: 2},
		{MotorType: "7HP", HeadSize: "50", Price: decimal.NewFromInt(1500), Quantity: 1}, // missing UOM
	}

	_, err := svc.AddLineItems("se1", "o1", items)
	if err == nil {
		t.Fatal("expected validation error")
	}
	apiErr, ok := err.(*apierror.APIError)
	if !ok || apiErr.Code != apierror.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if len(lineItemRepo.items["o1"]) != 0 {
		t.Fatal("no line items may be written when any entry is invalid")
	}
	if orderRepo.updates != 0 {
		t.Fatal("order must not change when the batch is invalid")
	}
}

func TestAddLineItemsRequiresAssignment(t *testing.T) {
	svc, _, _, _ := newSalesFixture(assignedOrder("o1"))

	items := []LineItemInput{
		{UOM: "NOS", MotorType: "5HP", HeadSize: "30", Price: decimal.NewFromInt(100), Quantity: 1},
	}
	_, err := svc.AddLineItems("se1", "o1", items)
	if err == nil {
		t.Fatal("expected unauthorized error without an active relation")
	}
	apiErr, ok := err.(*apierror.APIError)
	if !ok || apiErr.Code != apierror.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAddLineItemsRejectsDecidedOrder(t *testing.T) {
	order := assignedOrder("o1")
	order.SalesNegotiationStatus = string(workflow.NegotiationNegotiated)
	svc, _, _, relationRepo := newSalesFixture(order)
	relationRepo.salesRels["o1"] = activeRelation("o1")

	items := []LineItemInput{
		{UOM: "NOS", MotorType: "5HP", HeadSize: "30", Price: decimal.NewFromInt(100), Quantity: 1},
	}
	_, err := svc.AddLineItems("se1", "o1", items)
	if err == nil {
		t.Fatal("expected transition error for a decided order")
	}
}

func TestAddSapReferenceNumberPreconditions(t *testing.T) {
	order := assignedOrder("o1")
	order.SalesNegotiationStatus = string(workflow.NegotiationPendingAcceptance)
	svc, _, _, relationRepo := newSalesFixture(order)
	relationRepo.salesRels["o1"] = activeRelation("o1")

	if _, err := svc.AddSapReferenceNumber("se1", "o1", "SAP-1"); err == nil {
		t.Fatal("expected error while order is not customer approved")
	}
}

func TestAddSapReferenceNumberOnlyOnce(t *testing.T) {
	order := assignedOrder("o1")
	order.SalesNegotiationStatus = string(workflow.NegotiationNegotiated)
	order.ApprovedByCustomer = true
	svc, _, _, relationRepo := newSalesFixture(order)
	relationRepo.salesRels["o1"] = activeRelation("o1")

	updated, err := svc.AddSapReferenceNumber("se1", "o1", "SAP-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.SapReferenceNumber != "SAP-1" {
		t.Fatalf("expected sap reference recorded, got %q", updated.SapReferenceNumber)
	}

	if _, err := svc.AddSapReferenceNumber("se1", "o1", "SAP-2"); err == nil {
		t.Fatal("expected duplicate sap reference to be rejected")
	}
}

func TestAddSapReferenceNumberAfterRelationRetired(t *testing.T) {
	order := assignedOrder("o1")
	order.SalesNegotiationStatus = string(workflow.NegotiationNegotiated)
	order.ApprovedByCustomer = true
	svc, _, _, relationRepo := newSalesFixture(order)

	// Acceptance retires the claim; the sap reference still belongs to the
	// executive who negotiated the order.
	rel := activeRelation("o1")
	rel.IsActive = false
	relationRepo.salesRels["o1"] = rel

	updated, err := svc.AddSapReferenceNumber("se1", "o1", "SAP-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.SapReferenceNumber != "SAP-9" {
		t.Fatalf("expected sap reference recorded, got %q", updated.SapReferenceNumber)
	}
}

func TestListDecidedOrdersIncludesRetiredRelations(t *testing.T) {
	accepted := assignedOrder("o1")
	accepted.SalesNegotiationStatus = string(workflow.NegotiationNegotiated)
	svc, _, _, relationRepo := newSalesFixture(accepted)

	rel := activeRelation("o1")
	rel.IsActive = false
	rel.Order = accepted
	relationRepo.salesRels["o1"] = rel

	orders, err := svc.ListDecidedOrders("se1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "o1" {
		t.Fatalf("expected the accepted order despite its retired relation, got %v", orders)
	}

	orders, err = svc.ListDecidedOrders("se1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("an accepted order must not appear in the rejected list, got %v", orders)
	}
}

func TestAssignOrderRejectsActiveNegotiation(t *testing.T) {
	order := assignedOrder("o1")
	svc, _, _, relationRepo := newSalesFixture(order)
	relationRepo.salesRels["o1"] = activeRelation("o1")

	if _, err := svc.AssignOrder("se2", "o1"); err == nil {
		t.Fatal("expected assignment to fail while a relation is active")
	}
}

func TestAssignOrderAllowsReentryAfterRejection(t *testing.T) {
	order := assignedOrder("o1")
	order.SalesNegotiationStatus = string(workflow.NegotiationRejected)
	svc, orderRepo, _, _ := newSalesFixture(order)

	rel, err := svc.AssignOrder("se2", "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rel.SalesExecutiveID != "se2" {
		t.Fatalf("unexpected executive on relation: %s", rel.SalesExecutiveID)
	}
	if got := orderRepo.orders["o1"].SalesNegotiationStatus; got != string(workflow.NegotiationAssigned) {
		t.Fatalf("expected order back to ASSIGNED, got %s", got)
	}
}

func TestFilterRelationsByPeriod(t *testing.T) {
	now := time.Now()
	rels := []models.SalesExecOrderRelation{
		{OrderID: "today", CreatedAt: now.Add(-time.Minute)},
		{OrderID: "last-week", CreatedAt: now.AddDate(0, 0, -5)},
		{OrderID: "old", CreatedAt: now.AddDate(0, -2, 0)},
	}

	got := filterRelationsByPeriod(rels, OrderListFilter{Period: "today"})
	if len(got) != 1 || got[0].OrderID != "today" {
		t.Fatalf("today filter: unexpected result %v", got)
	}

	got = filterRelationsByPeriod(rels, OrderListFilter{Period: "week"})
	if len(got) != 2 {
		t.Fatalf("week filter: expected 2, got %d", len(got))
	}

	got = filterRelationsByPeriod(rels, OrderListFilter{Period: "month"})
	if len(got) != 2 {
		t.Fatalf("month filter: expected 2, got %d", len(got))
	}

	from := now.AddDate(0, -3, 0)
	to := now.AddDate(0, -1, 0)
	got = filterRelationsByPeriod(rels, OrderListFilter{From: &from, To: &to})
	if len(got) != 1 || got[0].OrderID != "old" {
		t.Fatalf("range filter: unexpected result %v", got)
	}
}

func TestPaginateRelations(t *testing.T) {
	rels := make([]models.SalesExecOrderRelation, 5)
	for i := range rels {
		rels[i].OrderID = string(rune('a' + i))
	}

	page := paginateRelations(rels, OrderListFilter{Page: 2, Limit: 2})
	if len(page) != 2 || page[0].OrderID != "c" {
		t.Fatalf("unexpected page: %v", page)
	}

	page = paginateRelations(rels, OrderListFilter{Page: 4, Limit: 2})
	if len(page) != 0 {
		t.Fatalf("expected empty page past the end, got %v", page)
	}

	page = paginateRelations(rels, OrderListFilter{})
	if len(page) != 5 {
		t.Fatalf("no limit must return everything, got %d", len(page))
	}
}

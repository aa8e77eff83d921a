package services

import (
	"errors"
	"log"
	"strconv"
	"time"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/repository"
	"order_manager/internal/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LineItemInput struct {
	UOM            string          `json:"uom" validate:"required"`
	MotorType      string          `json:"motor_type" validate:"required"`
	HeadSize       string          `json:"head_size" validate:"required"`
	Current        string          `json:"current"`
	Diameter       string          `json:"diameter"`
	PannelType     string          `json:"pannel_type"`
	SPD            bool            `json:"spd"`
	Data           bool            `json:"data"`
	Warranty       bool            `json:"warranty"`
	Transportation bool            `json:"transportation"`
	Price          decimal.Decimal `json:"price" validate:"required"`
	Quantity       int             `json:"quantity" validate:"required,gt=0"`
}

type UpdateOrderDetailsInput struct {
	ShippingAddress string          `json:"shipping_address"`
	BillingAddress  string          `json:"billing_address"`
	PaymentTermsID  string          `json:"payment_terms_id"`
	AdvanceAmount   *bool           `json:"advance_amount"`
	Discount        decimal.Decimal `json:"discount"`
	HeadSize        int             `json:"head_size"`
	MotorType       string          `json:"motor_type"`
	Current         string          `json:"current"`
	Diameter        string          `json:"diameter"`
	PannelType      string          `json:"pannel_type"`
	SPD             string          `json:"spd"`
	Data            string          `json:"data"`
	Warranty        string          `json:"warranty"`
	Transportation  string          `json:"transportation"`
	Remarks         string          `json:"remarks"`
}

type OrderListFilter struct {
	Period string     `form:"period"`
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
	Page   int        `form:"page"`
	Limit  int        `form:"limit"`
}

type SalesService interface {
	// AssignOrder creates an active relation and moves the order to
	// ASSIGNED.
	AssignOrder(salesExecutiveID, orderID string) (*models.SalesExecOrderRelation, error)
	ListAssignedOrders(salesExecutiveID string, filter OrderListFilter) ([]models.SalesExecOrderRelation, error)
	ListOrdersUnderProcess(salesExecutiveID string, filter OrderListFilter) ([]models.SalesExecOrderRelation, error)
	ListDecidedOrders(salesExecutiveID string, accepted bool) ([]models.Order, error)
	// AddLineItems validates the whole batch up front, then inserts the
	// items, aggregates the order price and quantity, and moves the order
	// to PENDING ACCEPTANCE in a single transaction.
	AddLineItems(salesExecutiveID, orderID string, items []LineItemInput) (*models.Order, error)
	UpdateOrderDetails(salesExecutiveID, orderID string, input UpdateOrderDetailsInput) (*models.Order, error)
	// AddSapReferenceNumber records the ERP reference once the customer
	// has confirmed the negotiated order.
	AddSapReferenceNumber(salesExecutiveID, orderID, sapReferenceNumber string) (*models.Order, error)
}

type salesService struct {
	orderRepo    repository.OrderRepository
	lineItemRepo repository.LineItemRepository
	relationRepo repository.RelationRepository
	validate     *validator.Validate
}

func NewSalesService(
	orderRepo repository.OrderRepository,
	lineItemRepo repository.LineItemRepository,
	relationRepo repository.RelationRepository,
) SalesService {
	return &salesService{
		orderRepo:    orderRepo,
		lineItemRepo: lineItemRepo,
		relationRepo: relationRepo,
		validate:     validator.New(),
	}
}

func (s *salesService) AssignOrder(salesExecutiveID, orderID string) (*models.SalesExecOrderRelation, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}

	from := workflow.NegotiationStatus(order.SalesNegotiationStatus)
	// Decided orders re-enter the pipeline through a fresh assignment.
	if from != "" && from != workflow.NegotiationNegotiated && from != workflow.NegotiationRejected {
		return nil, apierror.New("order is already in negotiation", apierror.CodeInvalidTransition)
	}

	// A decided order may still carry its old relation; retire it so only
	// one assignment is ever active.
	if existing, err := s.relationRepo.GetActiveSalesRelationByOrder(orderID); err == nil {
		if err := s.relationRepo.DeactivateSalesRelation(existing); err != nil {
			return nil, apierror.Wrap(err, apierror.CodeInternal)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	order.SalesNegotiationStatus = string(workflow.NegotiationAssigned)
	order.ProductStatus = append(order.ProductStatus, workflow.ProductAssigned)
	if err := s.orderRepo.UpdateWithVersion(order); err != nil {
		return nil, err
	}

	rel := &models.SalesExecOrderRelation{
		SalesExecutiveID: salesExecutiveID,
		OrderID:          orderID,
		IsActive:         true,
	}
	if err := s.relationRepo.CreateSalesRelation(rel); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	log.Printf("Assigned order %s to sales executive %s", orderID, salesExecutiveID)
	return rel, nil
}

func (s *salesService) ListAssignedOrders(salesExecutiveID string, filter OrderListFilter) ([]models.SalesExecOrderRelation, error) {
	rels, err := s.relationRepo.ListSalesRelations(salesExecutiveID, false)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return paginateRelations(filterRelationsByPeriod(rels, filter), filter), nil
}

func (s *salesService) ListOrdersUnderProcess(salesExecutiveID string, filter OrderListFilter) ([]models.SalesExecOrderRelation, error) {
	rels, err := s.relationRepo.ListSalesRelations(salesExecutiveID, true)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return paginateRelations(filterRelationsByPeriod(rels, filter), filter), nil
}

func (s *salesService) ListDecidedOrders(salesExecutiveID string, accepted bool) ([]models.Order, error) {
	want := workflow.NegotiationRejected
	if accepted {
		want = workflow.NegotiationNegotiated
	}

	// Accepted orders carry a retired relation, so list every claim the
	// executive ever held and filter by the order's terminal status.
	rels, err := s.relationRepo.ListAllSalesRelations(salesExecutiveID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	seen := make(map[string]bool)
	var orders []models.Order
	for _, rel := range rels {
		if rel.Order == nil || seen[rel.OrderID] {
			continue
		}
		seen[rel.OrderID] = true
		if rel.Order.SalesNegotiationStatus == string(want) {
			orders = append(orders, *rel.Order)
		}
	}
	return orders, nil
}

func (s *salesService) getAssignedOrder(salesExecutiveID, orderID string) (*models.Order, *models.SalesExecOrderRelation, error) {
	rel, err := s.relationRepo.GetActiveSalesRelation(salesExecutiveID, orderID)
	if err != nil {
		return nil, nil, apierror.New("order is not assigned to this sales executive", apierror.CodeUnauthorized)
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}
	return order, rel, nil
}

func (s *salesService) AddLineItems(salesExecutiveID, orderID string, items []LineItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apierror.New("at least one line item is required", apierror.CodeInvalidInputs)
	}

	// Validate the whole batch before touching the database so a bad row
	// never leaves a half-written batch behind.
	for i, item := range items {
		if err := s.validate.Struct(item); err != nil {
			return nil, apierror.New("line item "+strconv.Itoa(i)+" is invalid: "+err.Error(), apierror.CodeValidation)
		}
	}

	order, rel, err := s.getAssignedOrder(salesExecutiveID, orderID)
	if err != nil {
		return nil, err
	}

	from := workflow.NegotiationStatus(order.SalesNegotiationStatus)
	if err := workflow.ValidateNegotiationTransition(from, workflow.NegotiationPendingAcceptance); err != nil {
		return nil, err
	}

	lineItems := make([]models.LineItem, 0, len(items))
	totalPrice := decimal.Zero
	totalQuantity := 0
	for _, item := range items {
		lineItems = append(lineItems, models.LineItem{
			OrderID:        orderID,
			UOM:            item.UOM,
			MotorType:      item.MotorType,
			HeadSize:       item.HeadSize,
			Current:        item.Current,
			Diameter:       item.Diameter,
			PannelType:     item.PannelType,
			SPD:            item.SPD,
			Data:           item.Data,
			Warranty:       item.Warranty,
			Transportation: item.Transportation,
			Price:          item.Price,
			Quantity:       item.Quantity,
		})
		// Item prices are already per-line totals; the order carries their
		// sum and the summed quantity side by side.
		totalPrice = totalPrice.Add(item.Price)
		totalQuantity += item.Quantity
	}

	order.Price = totalPrice
	order.Quantity = totalQuantity
	order.SalesNegotiationStatus = string(workflow.NegotiationPendingAcceptance)
	order.ApprovedBySales = true
	order.OrderStatus = append(order.OrderStatus, workflow.OrderPendingAcceptance)
	order.ProductStatus = append(order.ProductStatus, workflow.ProductPendingAcceptance)

	if err := s.lineItemRepo.CreateBatchForOrder(lineItems, order); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	rel.IsUnderProcess = true
	if err := s.relationRepo.UpdateSalesRelation(rel); err != nil {
		log.Printf("Warning: failed to flag relation under process: %v", err)
	}
	return order, nil
}

func (s *salesService) UpdateOrderDetails(salesExecutiveID, orderID string, input UpdateOrderDetailsInput) (*models.Order, error) {
	order, _, err := s.getAssignedOrder(salesExecutiveID, orderID)
	if err != nil {
		return nil, err
	}

	status := workflow.NegotiationStatus(order.SalesNegotiationStatus)
	if status == workflow.NegotiationNegotiated || status == workflow.NegotiationRejected {
		return nil, apierror.New("order negotiation is already decided", apierror.CodeInvalidTransition)
	}

	if input.ShippingAddress != "" {
		order.ShippingAddress = input.ShippingAddress
	}
	if input.BillingAddress != "" {
		order.BillingAddress = input.BillingAddress
	}
	if input.PaymentTermsID != "" {
		order.PaymentTermsID = input.PaymentTermsID
	}
	if input.AdvanceAmount != nil {
		order.AdvanceAmount = *input.AdvanceAmount
	}
	if !input.Discount.IsZero() {
		order.Discount = input.Discount
	}
	if input.HeadSize != 0 {
		order.HeadSize = input.HeadSize
	}
	if input.MotorType != "" {
		order.MotorType = input.MotorType
	}
	if input.Current != "" {
		order.Current = input.Current
	}
	if input.Diameter != "" {
		order.Diameter = input.Diameter
	}
	if input.PannelType != "" {
		order.PannelType = input.PannelType
	}
	if input.SPD != "" {
		order.SPD = input.SPD
	}
	if input.Data != "" {
		order.Data = input.Data
	}
	if input.Warranty != "" {
		order.Warranty = input.Warranty
	}
	if input.Transportation != "" {
		order.Transportation = input.Transportation
	}
	if input.Remarks != "" {
		order.Remarks = input.Remarks
	}

	if err := s.orderRepo.UpdateWithVersion(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *salesService) AddSapReferenceNumber(salesExecutiveID, orderID, sapReferenceNumber string) (*models.Order, error) {
	if sapReferenceNumber == "" {
		return nil, apierror.New("sap reference number is required", apierror.CodeInvalidInputs)
	}

	// Acceptance retires the relation, so resolve the executive's most
	// recent claim rather than an active one.
	if _, err := s.relationRepo.GetLatestSalesRelation(salesExecutiveID, orderID); err != nil {
		return nil, apierror.New("order is not assigned to this sales executive", apierror.CodeUnauthorized)
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}

	if order.SalesNegotiationStatus != string(workflow.NegotiationNegotiated) || !order.ApprovedByCustomer {
		return nil, apierror.New("order must be customer approved before adding a sap reference", apierror.CodeInvalidTransition)
	}
	if order.SapReferenceNumber != "" {
		return nil, apierror.New("sap reference number already recorded", apierror.CodeDuplicate)
	}

	order.SapReferenceNumber = sapReferenceNumber
	order.ProductStatus = append(order.ProductStatus, workflow.ProductPendingApproval)
	if err := s.orderRepo.UpdateWithVersion(order); err != nil {
		return nil, err
	}
	return order, nil
}

func filterRelationsByPeriod(rels []models.SalesExecOrderRelation, filter OrderListFilter) []models.SalesExecOrderRelation {
	from, to := filter.From, filter.To
	now := time.Now()
	switch filter.Period {
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		from, to = &start, &now
	case "week":
		start := now.AddDate(0, 0, -7)
		from, to = &start, &now
	case "month":
		start := now.AddDate(0, -1, 0)
		from, to = &start, &now
	}
	if from == nil && to == nil {
		return rels
	}

	var out []models.SalesExecOrderRelation
	for _, rel := range rels {
		created := rel.CreatedAt
		if rel.Order != nil {
			created = rel.Order.CreatedAt
		}
		if from != nil && created.Before(*from) {
			continue
		}
		if to != nil && created.After(*to) {
			continue
		}
		out = append(out, rel)
	}
	return out
}

func paginateRelations(rels []models.SalesExecOrderRelation, filter OrderListFilter) []models.SalesExecOrderRelation {
	if filter.Limit <= 0 {
		return rels
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * filter.Limit
	if start >= len(rels) {
		return []models.SalesExecOrderRelation{}
	}
	end := start + filter.Limit
	if end > len(rels) {
		end = len(rels)
	}
	return rels[start:end]
}

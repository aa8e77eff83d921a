package services

import (
	"errors"
	"time"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/repository"
	"order_manager/internal/workflow"

	"gorm.io/gorm"
)

type DeadlineInput struct {
	LineItemID string    `json:"line_item_id" binding:"required"`
	DeadLine   time.Time `json:"dead_line" binding:"required"`
}

type PlanningService interface {
	// ListOrders returns orders cleared for planning: no advance required,
	// or the advance confirmed by accounts.
	ListOrders() ([]models.Order, error)
	// AddDeadlines validates every entry before writing anything, then
	// stamps each line item and derives the order deadline from the
	// latest line-item deadline, normalized to end of day.
	AddDeadlines(orderID string, inputs []DeadlineInput) (*models.Order, error)
}

type planningService struct {
	orderRepo       repository.OrderRepository
	lineItemRepo    repository.LineItemRepository
	paymentTermRepo repository.PaymentTermRepository
	advanceLabel    string
}

func NewPlanningService(
	orderRepo repository.OrderRepository,
	lineItemRepo repository.LineItemRepository,
	paymentTermRepo repository.PaymentTermRepository,
	advanceLabel string,
) PlanningService {
	return &planningService{
		orderRepo:       orderRepo,
		lineItemRepo:    lineItemRepo,
		paymentTermRepo: paymentTermRepo,
		advanceLabel:    advanceLabel,
	}
}

func (s *planningService) sentinelTermID() (string, error) {
	term, err := s.paymentTermRepo.GetByLabel(s.advanceLabel)
	if err != nil {
		return "", apierror.New("advance amount payment term is not configured", apierror.CodeInternal)
	}
	return term.ID, nil
}

func (s *planningService) ListOrders() ([]models.Order, error) {
	sentinelID, err := s.sentinelTermID()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListPlanningOrders(sentinelID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return orders, nil
}

// endOfDay pushes a deadline to 23:59:59 so same-day work is never counted
// as overdue.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func (s *planningService) AddDeadlines(orderID string, inputs []DeadlineInput) (*models.Order, error) {
	if len(inputs) == 0 {
		return nil, apierror.New("at least one deadline is required", apierror.CodeInvalidInputs)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}
	if !order.ApprovedByCustomer {
		return nil, apierror.New("order is not customer approved yet", apierror.CodeInvalidTransition)
	}

	existing, err := s.lineItemRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	known := make(map[string]bool, len(existing))
	for _, item := range existing {
		known[item.ID] = true
	}

	// The whole batch is checked first; one bad line item id fails the
	// request before any deadline is written.
	items := make([]models.LineItem, 0, len(inputs))
	var latest time.Time
	for _, input := range inputs {
		if !known[input.LineItemID] {
			return nil, apierror.New("line item "+input.LineItemID+" does not belong to this order", apierror.CodeInvalidID)
		}
		deadline := endOfDay(input.DeadLine)
		if deadline.After(latest) {
			latest = deadline
		}
		items = append(items, models.LineItem{
			ID:       input.LineItemID,
			DeadLine: &deadline,
		})
	}

	order.DeadLine = &latest
	order.ApprovedByPlanning = true
	order.ProductStatus = append(order.ProductStatus, workflow.ProductPendingPlanning)

	if err := s.lineItemRepo.UpdateDeadlinesForOrder(items, order); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.New("line item not found for this order", apierror.CodeInvalidID)
		}
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return order, nil
}

package services

import (
	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/repository"
	"order_manager/internal/workflow"
)

type AccountsService interface {
	// ListAdvancePendingOrders returns orders that owe an advance payment
	// and await confirmation.
	ListAdvancePendingOrders() ([]models.Order, error)
	// ApproveAdvancePayment confirms the advance was received and releases
	// the order to planning.
	ApproveAdvancePayment(orderID string) (*models.Order, error)
}

type accountsService struct {
	orderRepo       repository.OrderRepository
	paymentTermRepo repository.PaymentTermRepository
	advanceLabel    string
}

func NewAccountsService(
	orderRepo repository.OrderRepository,
	paymentTermRepo repository.PaymentTermRepository,
	advanceLabel string,
) AccountsService {
	return &accountsService{
		orderRepo:       orderRepo,
		paymentTermRepo: paymentTermRepo,
		advanceLabel:    advanceLabel,
	}
}

func (s *accountsService) sentinelTermID() (string, error) {
	term, err := s.paymentTermRepo.GetByLabel(s.advanceLabel)
	if err != nil {
		return "", apierror.New("advance amount payment term is not configured", apierror.CodeInternal)
	}
	return term.ID, nil
}

func (s *accountsService) ListAdvancePendingOrders() ([]models.Order, error) {
	sentinelID, err := s.sentinelTermID()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListPendingAccountsApproval(sentinelID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return orders, nil
}

func (s *accountsService) ApproveAdvancePayment(orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}
	if !order.ApprovedByCustomer {
		return nil, apierror.New("order is not customer approved yet", apierror.CodeInvalidTransition)
	}
	if order.ApprovedByAccounts {
		return nil, apierror.New("advance payment already confirmed", apierror.CodeDuplicate)
	}

	sentinelID, err := s.sentinelTermID()
	if err != nil {
		return nil, err
	}
	if order.PaymentTermsID == "" || order.PaymentTermsID == sentinelID {
		return nil, apierror.New("order does not require an advance payment", apierror.CodeInvalidInputs)
	}

	order.ApprovedByAccounts = true
	order.ProductStatus = append(order.ProductStatus, workflow.ProductPendingPlanning)
	if err := s.orderRepo.UpdateWithVersion(order); err != nil {
		return nil, err
	}
	return order, nil
}

package workflow

import "order_manager/internal/apierror"

// NegotiationStatus is the sales-acceptance sub-state of an order.
type NegotiationStatus string

const (
	NegotiationAssigned          NegotiationStatus = "ASSIGNED"
	NegotiationPendingAcceptance NegotiationStatus = "PENDING ACCEPTANCE"
	NegotiationNegotiated        NegotiationStatus = "NEGOTIATED"
	NegotiationRejected          NegotiationStatus = "REJECTED"
)

// negotiationTransitions is the allowed-transition table. NEGOTIATED and
// REJECTED are terminal for the accept/reject endpoints; an order leaves them
// only through a fresh assignment relation.
var negotiationTransitions = map[NegotiationStatus][]NegotiationStatus{
	NegotiationAssigned:          {NegotiationPendingAcceptance},
	NegotiationPendingAcceptance: {NegotiationNegotiated, NegotiationRejected},
	NegotiationNegotiated:        {},
	NegotiationRejected:          {},
}

// ValidateNegotiationTransition rejects any move the transition table does not
// allow, so callers never write an out-of-sequence status string.
func ValidateNegotiationTransition(from, to NegotiationStatus) error {
	if from == "" {
		// New orders start unassigned; only ASSIGNED may be entered directly.
		if to == NegotiationAssigned {
			return nil
		}
		return apierror.New("order has no negotiation status yet", apierror.CodeInvalidTransition)
	}
	for _, next := range negotiationTransitions[from] {
		if next == to {
			return nil
		}
	}
	return apierror.New(
		"cannot move order from "+string(from)+" to "+string(to),
		apierror.CodeInvalidTransition,
	)
}

// Order status history entries.
const (
	OrderSubmitted            = "Submitted"
	OrderInProgress           = "In Progress"
	OrderPendingAcceptance    = "PENDING ACCEPTANCE"
	OrderConfirmed            = "Order Confirmed"
	OrderProductionInProgress = "Production In Progress"
	OrderDispatchInProgress   = "Dispatch In Progress"
	OrderShipped              = "Order Shipped"
	OrderDelivered            = "Delivered"
	OrderAcceptanceRejected   = "Acceptance Rejected"
)

// Product status history entries.
const (
	ProductToBeProcessed          = "To Be Processed"
	ProductAssigned               = "Assigned"
	ProductNegotiation            = "Negotiation"
	ProductPendingAcceptance      = "PENDING ACCEPTANCE"
	ProductOrderConfirmed         = "Order Confirmed"
	ProductPendingApproval        = "Pending Approval"
	ProductPendingPayment         = "Pending Payment Confirmation"
	ProductPendingPlanning        = "Pending Planning Confirmation"
	ProductAcceptanceRejected     = "Acceptance Rejected"
	ProductPlanningMaterialIssue  = "Planning for Material Issue"
	ProductMaterialIssueProgress  = "Material Issue In-Progress"
	ProductPendingWinding         = "Pending for Winding"
	ProductWindingInProgress      = "Winding In-Progress"
	ProductPendingAssembly        = "Pending for Assembly"
	ProductAssemblyInProgress     = "Assembly In-Progress"
	ProductPendingTesting         = "Pending for Testing"
	ProductTestingInProgress      = "Testing In-Progress"
	ProductPendingPacking         = "Pending for Packing"
	ProductPackagingInProgress    = "Packaging In-Progress"
	ProductPendingAccountConfirm  = "Pending Account Confirmation"
	ProductReadyForDispatch       = "Ready for Dispatch"
	ProductDispatched             = "Dispatched"
	ProductShipped                = "Shipped"
	ProductAccepted               = "Accepted"
)

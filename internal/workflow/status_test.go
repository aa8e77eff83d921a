package workflow

import (
	"testing"

	"order_manager/internal/apierror"
)

func TestValidateNegotiationTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    NegotiationStatus
		to      NegotiationStatus
		allowed bool
	}{
		{"fresh order to assigned", "", NegotiationAssigned, true},
		{"fresh order cannot skip to negotiated", "", NegotiationNegotiated, false},
		{"assigned to pending acceptance", NegotiationAssigned, NegotiationPendingAcceptance, true},
		{"assigned cannot jump to negotiated", NegotiationAssigned, NegotiationNegotiated, false},
		{"pending to negotiated", NegotiationPendingAcceptance, NegotiationNegotiated, true},
		{"pending to rejected", NegotiationPendingAcceptance, NegotiationRejected, true},
		{"negotiated is terminal", NegotiationNegotiated, NegotiationPendingAcceptance, false},
		{"rejected is terminal", NegotiationRejected, NegotiationNegotiated, false},
		{"no self transition", NegotiationPendingAcceptance, NegotiationPendingAcceptance, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNegotiationTransition(tc.from, tc.to)
			if tc.allowed && err != nil {
				t.Fatalf("expected transition %s -> %s to be allowed, got %v", tc.from, tc.to, err)
			}
			if !tc.allowed {
				if err == nil {
					t.Fatalf("expected transition %s -> %s to be rejected", tc.from, tc.to)
				}
				apiErr, ok := err.(*apierror.APIError)
				if !ok {
					t.Fatalf("expected APIError, got %T", err)
				}
				if apiErr.Code != apierror.CodeInvalidTransition {
					t.Fatalf("expected code %q, got %q", apierror.CodeInvalidTransition, apiErr.Code)
				}
			}
		})
	}
}

func TestStageForRole(t *testing.T) {
	stage, err := StageForRole("WINDING EXECUTIVE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage != StageWinding {
		t.Fatalf("expected winding stage, got %s", stage)
	}
	if stage.Column() != "winding_unit_unique_id" {
		t.Fatalf("unexpected column %q", stage.Column())
	}

	if _, err := StageForRole("DISTRIBUTOR"); err == nil {
		t.Fatal("expected non-scanning role to be rejected")
	}
}

func TestStageIsEntry(t *testing.T) {
	if !StageStores.IsEntry() {
		t.Fatal("stores must be the entry stage")
	}
	for _, stage := range []Stage{StageWinding, StageAssembly, StageTesting, StagePacking, StageQC} {
		if stage.IsEntry() {
			t.Fatalf("stage %s must not be an entry stage", stage)
		}
	}
}

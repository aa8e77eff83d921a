package models

import "testing"

func TestStringArrayRoundTrip(t *testing.T) {
	original := StringArray{"Submitted", "In Progress", "Order Confirmed"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded StringArray
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != len(original) {
		t.Fatalf("expected %d entries, got %d", len(original), len(decoded))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Fatalf("entry %d: expected %q, got %q", i, original[i], decoded[i])
		}
	}
}

func TestStringArrayScanString(t *testing.T) {
	var arr StringArray
	if err := arr.Scan(`["a","b"]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(arr) != 2 || arr[0] != "a" || arr[1] != "b" {
		t.Fatalf("unexpected result: %v", arr)
	}
}

func TestStringArrayScanNil(t *testing.T) {
	var arr StringArray
	if err := arr.Scan(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arr == nil || len(arr) != 0 {
		t.Fatalf("expected empty array, got %v", arr)
	}
}

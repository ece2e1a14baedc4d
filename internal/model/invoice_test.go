package model_test

import (
	"testing"

	"invoice-escrow/internal/model"
)

func TestStatusFromCode(t *testing.T) {
	tests := []struct {
		code uint8
		want model.InvoiceStatus
	}{
		{0, model.StatusStaked},
		{1, model.StatusInProgress},
		{2, model.StatusCompleted},
		{3, model.StatusCancelled},
		{4, model.StatusUnknown},
		{255, model.StatusUnknown},
	}

	for _, tt := range tests {
		if got := model.StatusFromCode(tt.code); got != tt.want {
			t.Errorf("StatusFromCode(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestDraftEmpty(t *testing.T) {
	var d model.InvoiceDraft
	if !d.Empty() {
		t.Error("zero draft should be empty")
	}

	d.Title = "Build a website"
	if d.Empty() {
		t.Error("populated draft should not be empty")
	}
}

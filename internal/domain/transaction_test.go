package domain

import "testing"

func TestCanTransitionLegalEdges(t *testing.T) {
	legal := []struct {
		from TransactionStatus
		to   TransactionStatus
	}{
		{StatusCreated, StatusProductSubmitted},
		{StatusProductSubmitted, StatusProductApproved},
		{StatusProductSubmitted, StatusRejected},
		{StatusProductApproved, StatusPaymentUploaded},
		{StatusPaymentUploaded, StatusPaymentVerified},
		{StatusPaymentUploaded, StatusPaymentRejected},
		{StatusPaymentRejected, StatusPaymentUploaded},
		{StatusPaymentVerified, StatusDispatched},
		{StatusDispatched, StatusProductDelivered},
		{StatusProductDelivered, StatusInspectionPassed},
		{StatusProductDelivered, StatusInspectionFailed},
		{StatusInspectionPassed, StatusFundsReleased},
	}

	for _, edge := range legal {
		if !CanTransition(edge.from, edge.to) {
			t.Errorf("expected %s -> %s to be legal", edge.from, edge.to)
		}
	}
}

func TestCanTransitionRejectsSkips(t *testing.T) {
	illegal := []struct {
		from TransactionStatus
		to   TransactionStatus
	}{
		{StatusCreated, StatusProductApproved},
		{StatusCreated, StatusFundsReleased},
		{StatusProductSubmitted, StatusPaymentUploaded},
		{StatusProductApproved, StatusPaymentVerified},
		{StatusPaymentUploaded, StatusDispatched},
		{StatusPaymentVerified, StatusProductDelivered},
		{StatusDispatched, StatusInspectionPassed},
		{StatusProductDelivered, StatusFundsReleased},
		// no edges leave terminal states
		{StatusRejected, StatusCreated},
		{StatusInspectionFailed, StatusProductDelivered},
		{StatusFundsReleased, StatusCreated},
		// no backwards movement
		{StatusPaymentVerified, StatusPaymentUploaded},
		{StatusProductApproved, StatusProductSubmitted},
	}

	for _, edge := range illegal {
		if CanTransition(edge.from, edge.to) {
			t.Errorf("expected %s -> %s to be illegal", edge.from, edge.to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	terminal := map[TransactionStatus]bool{
		StatusRejected:         true,
		StatusInspectionFailed: true,
		StatusFundsReleased:    true,
	}

	all := []TransactionStatus{
		StatusCreated, StatusProductSubmitted, StatusProductApproved,
		StatusRejected, StatusPaymentUploaded, StatusPaymentVerified,
		StatusPaymentRejected, StatusDispatched, StatusProductDelivered,
		StatusInspectionPassed, StatusInspectionFailed, StatusFundsReleased,
	}

	for _, status := range all {
		if got := status.Terminal(); got != terminal[status] {
			t.Errorf("Terminal(%s) = %v, want %v", status, got, terminal[status])
		}
	}

	derived := TerminalStatuses()
	if len(derived) != len(terminal) {
		t.Fatalf("TerminalStatuses() = %v, want the %d terminal statuses", derived, len(terminal))
	}
	for _, status := range derived {
		if !terminal[status] {
			t.Errorf("TerminalStatuses() includes non-terminal %s", status)
		}
	}
}

func TestStatusValid(t *testing.T) {
	if !StatusPaymentUploaded.Valid() {
		t.Error("payment_uploaded should be valid")
	}
	if TransactionStatus("pending").Valid() {
		t.Error("unknown status string should not be valid")
	}
	if TransactionStatus("").Valid() {
		t.Error("empty status should not be valid")
	}
}

func TestCapabilityChecks(t *testing.T) {
	tx := &Transaction{BuyerID: "buyer-1"}

	if tx.HasSeller() {
		t.Error("fresh transaction should have no seller")
	}
	if !tx.IsBuyer("buyer-1") || tx.IsBuyer("other") {
		t.Error("buyer check failed")
	}
	// an unset seller slot must not match the empty actor id
	if tx.IsSeller("") {
		t.Error("empty actor id must never match an unset seller")
	}

	tx.SellerID = "seller-1"
	if !tx.HasSeller() || !tx.IsSeller("seller-1") {
		t.Error("seller check failed after join")
	}
	if !tx.IsParticipant("buyer-1") || !tx.IsParticipant("seller-1") || tx.IsParticipant("admin-1") {
		t.Error("participant check failed")
	}
}

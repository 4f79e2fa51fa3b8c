package zewif

import "testing"

func TestAccountAddAddressRejectsDuplicate(t *testing.T) {
	a := NewAccount("Default Account")
	if err := a.AddAddress(NewTransparentAddress("t1abc")); err != nil {
		t.Fatalf("first add: unexpected error: %v", err)
	}
	if err := a.AddAddress(NewTransparentAddress("t1abc")); err == nil {
		t.Fatal("expected error adding duplicate address string, got nil")
	}
	if got := len(a.Addresses()); got != 1 {
		t.Fatalf("len(Addresses()) = %d, want 1", got)
	}
}

func TestAccountRelevantTxIdsIdempotent(t *testing.T) {
	a := NewAccount("Default Account")
	var txid TxId
	txid[0] = 0xAB

	a.AddRelevantTxId(txid)
	a.AddRelevantTxId(txid)

	if !a.HasRelevantTxId(txid) {
		t.Fatal("expected txid to be marked relevant")
	}
	if got := len(a.RelevantTxIds()); got != 1 {
		t.Fatalf("len(RelevantTxIds()) = %d, want 1", got)
	}
}

func TestAccountZIP32AccountIndex(t *testing.T) {
	a := NewAccount("Account #1").SetZIP32AccountIndex(1)
	if a.ZIP32AccountIndex == nil || *a.ZIP32AccountIndex != 1 {
		t.Fatalf("ZIP32AccountIndex = %v, want 1", a.ZIP32AccountIndex)
	}
}

package ledger

import "testing"

func sampleInputs() []TxIn {
	return []TxIn{
		{PrevTxID: "prev_txid_a", Vout: 0, Signature: "sig_a", Sequence: 0xffffffff},
		{PrevTxID: "prev_txid_b", Vout: 3, Signature: "sig_b", Sequence: 7},
	}
}

func sampleOutputs() []TxOut {
	return []TxOut{
		{Address: "address_a", Amount: 50_000_000},
		{Address: "address_b", Amount: 1},
	}
}

// TestNewTransaction verifies that a transaction keeps its inputs and outputs
// in order and gets a non-empty identifier.
func TestNewTransaction(t *testing.T) {
	tx := NewTransaction(sampleInputs(), sampleOutputs())

	if len(tx.ID()) != 64 {
		t.Fatalf("expected a 64 character txid, got %q", tx.ID())
	}
	inputs := tx.Inputs()
	if len(inputs) != 2 || inputs[0].PrevTxID != "prev_txid_a" || inputs[1].Vout != 3 {
		t.Fatalf("unexpected inputs: %+v", inputs)
	}
	outputs := tx.Outputs()
	if len(outputs) != 2 || outputs[0].Amount != 50_000_000 || outputs[1].Address != "address_b" {
		t.Fatalf("unexpected outputs: %+v", outputs)
	}
}

// TestTransactionIDDeterministic verifies that identical content always
// yields the same identifier.
func TestTransactionIDDeterministic(t *testing.T) {
	a := NewTransaction(sampleInputs(), sampleOutputs())
	b := NewTransaction(sampleInputs(), sampleOutputs())
	if a.ID() != b.ID() {
		t.Fatalf("same content produced %s and %s", a.ID(), b.ID())
	}
}

// TestTransactionIDMatchesFieldOrder pins the field layout of the txid:
// each input's prev txid, vout, signature and sequence, then each output's
// address and amount.
func TestTransactionIDMatchesFieldOrder(t *testing.T) {
	tx := NewTransaction(
		[]TxIn{{PrevTxID: "p", Vout: 1, Signature: "s", Sequence: 2}},
		[]TxOut{{Address: "a", Amount: 3}},
	)
	expected := NewTransaction(nil, []TxOut{{Address: "p1s2a", Amount: 3}})
	if tx.ID() != expected.ID() {
		t.Fatalf("txid should hash the concatenated fields, got %s want %s", tx.ID(), expected.ID())
	}
}

// TestTransactionIDReordering verifies that swapping inputs or outputs
// changes the identifier.
func TestTransactionIDReordering(t *testing.T) {
	base := NewTransaction(sampleInputs(), sampleOutputs())

	in := sampleInputs()
	in[0], in[1] = in[1], in[0]
	if NewTransaction(in, sampleOutputs()).ID() == base.ID() {
		t.Fatal("reordering inputs should change the txid")
	}

	out := sampleOutputs()
	out[0], out[1] = out[1], out[0]
	if NewTransaction(sampleInputs(), out).ID() == base.ID() {
		t.Fatal("reordering outputs should change the txid")
	}
}

// TestTransactionIsolatedFromCaller verifies that neither the slices passed
// to NewTransaction nor the ones returned by the accessors can alter the
// transaction after construction.
func TestTransactionIsolatedFromCaller(t *testing.T) {
	in := sampleInputs()
	out := sampleOutputs()
	tx := NewTransaction(in, out)
	id := tx.ID()

	in[0].Signature = "tampered"
	out[0].Amount = 0
	tx.Inputs()[0].PrevTxID = "tampered"
	tx.Outputs()[1].Address = "tampered"

	if tx.Inputs()[0].Signature != "sig_a" || tx.Inputs()[0].PrevTxID != "prev_txid_a" {
		t.Fatal("transaction inputs were modified from outside")
	}
	if tx.Outputs()[0].Amount != 50_000_000 || tx.Outputs()[1].Address != "address_b" {
		t.Fatal("transaction outputs were modified from outside")
	}
	if tx.ID() != id {
		t.Fatal("transaction id changed after construction")
	}
}

func TestEmptyTransaction(t *testing.T) {
	tx := NewTransaction(nil, nil)
	empty := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if tx.ID() != empty {
		t.Fatalf("expected the digest of no fields, got %s", tx.ID())
	}
	if len(tx.Inputs()) != 0 || len(tx.Outputs()) != 0 {
		t.Fatal("empty transaction should have no inputs or outputs")
	}
}

package ledger

import (
	"encoding/json"
	"strconv"

	"github.com/luca-patrignani/minichain/common"
)

// TxIn references an output of a previous transaction. The signature is
// carried as an opaque string and never verified.
type TxIn struct {
	PrevTxID  string `json:"prev_txid"`
	Vout      uint32 `json:"vout"`
	Signature string `json:"signature"`
	Sequence  uint32 `json:"sequence"`
}

// TxOut pays Amount, in the smallest unit, to Address.
type TxOut struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// Transaction is an immutable set of inputs and outputs identified by the
// hash of its content.
type Transaction struct {
	inputs  []TxIn
	outputs []TxOut
	id      string
}

// NewTransaction copies inputs and outputs into a new transaction and
// computes its identifier. No balance or signature check is performed.
func NewTransaction(inputs []TxIn, outputs []TxOut) Transaction {
	tx := Transaction{
		inputs:  append([]TxIn(nil), inputs...),
		outputs: append([]TxOut(nil), outputs...),
	}
	tx.id = tx.calculateID()
	return tx
}

func (tx Transaction) calculateID() string {
	fields := make([]string, 0, 4*len(tx.inputs)+2*len(tx.outputs))
	for _, in := range tx.inputs {
		fields = append(fields,
			in.PrevTxID,
			strconv.FormatUint(uint64(in.Vout), 10),
			in.Signature,
			strconv.FormatUint(uint64(in.Sequence), 10),
		)
	}
	for _, out := range tx.outputs {
		fields = append(fields, out.Address, strconv.FormatUint(out.Amount, 10))
	}
	return common.HashFields(fields...)
}

func (tx Transaction) ID() string {
	return tx.id
}

func (tx Transaction) Inputs() []TxIn {
	return append([]TxIn(nil), tx.inputs...)
}

func (tx Transaction) Outputs() []TxOut {
	return append([]TxOut(nil), tx.outputs...)
}

func (tx Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string  `json:"txid"`
		Inputs  []TxIn  `json:"inputs"`
		Outputs []TxOut `json:"outputs"`
	}{tx.id, tx.inputs, tx.outputs})
}

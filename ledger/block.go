package ledger

import (
	"encoding/json"
	"strconv"

	"github.com/luca-patrignani/minichain/common"
)

// GenesisPrevHash is the previous hash conventionally given to a genesis block.
const GenesisPrevHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Block groups transactions under a hash derived from its header fields.
// Transactions are kept most recent first.
type Block struct {
	hash         string
	height       uint64
	transactions []Transaction
	prevHash     string
	timestamp    uint64
	merkleRoot   string
	nonce        uint32
}

// NewBlock creates an empty block and computes its hash. A height of 0 marks
// a genesis block; any other height must point prevHash at a block already
// accepted by the chain it is going to be added to.
func NewBlock(height uint64, prevHash string, timestamp uint64, merkleRoot string, nonce uint32) Block {
	b := Block{
		height:     height,
		prevHash:   prevHash,
		timestamp:  timestamp,
		merkleRoot: merkleRoot,
		nonce:      nonce,
	}
	b.hash = b.CalculateHash()
	return b
}

// CalculateHash computes the SHA256 hash of the block header: height,
// previous hash, timestamp, merkle root and nonce, in that order. The
// transaction list is not part of it; the merkle root is the only link and
// it is supplied by the caller.
func (b Block) CalculateHash() string {
	return common.HashFields(
		strconv.FormatUint(b.height, 10),
		b.prevHash,
		strconv.FormatUint(b.timestamp, 10),
		b.merkleRoot,
		strconv.FormatUint(uint64(b.nonce), 10),
	)
}

// AddTransaction puts tx at the front of the block and refreshes the hash.
// It currently never fails.
func (b *Block) AddTransaction(tx Transaction) error {
	b.transactions = append(b.transactions, Transaction{})
	copy(b.transactions[1:], b.transactions)
	b.transactions[0] = tx
	b.hash = b.CalculateHash()
	return nil
}

// FindTransaction returns the first transaction in the block whose
// identifier equals txid.
func (b Block) FindTransaction(txid string) (Transaction, bool) {
	for _, tx := range b.transactions {
		if tx.id == txid {
			return tx, true
		}
	}
	return Transaction{}, false
}

func (b Block) Hash() string       { return b.hash }
func (b Block) Height() uint64     { return b.height }
func (b Block) PrevHash() string   { return b.prevHash }
func (b Block) Timestamp() uint64  { return b.timestamp }
func (b Block) MerkleRoot() string { return b.merkleRoot }
func (b Block) Nonce() uint32      { return b.nonce }

// Transactions returns a copy of the block's transactions, most recent first.
func (b Block) Transactions() []Transaction {
	return append([]Transaction(nil), b.transactions...)
}

// Clone returns a copy of b that shares no mutable state with it.
func (b Block) Clone() Block {
	c := b
	c.transactions = b.Transactions()
	return c
}

func (b Block) MarshalJSON() ([]byte, error) {
	txs := b.transactions
	if txs == nil {
		txs = []Transaction{}
	}
	return json.Marshal(struct {
		Hash         string        `json:"hash"`
		Height       uint64        `json:"height"`
		PrevHash     string        `json:"prev_hash"`
		Timestamp    uint64        `json:"timestamp"`
		MerkleRoot   string        `json:"merkle_root"`
		Nonce        uint32        `json:"nonce"`
		Transactions []Transaction `json:"transactions"`
	}{b.hash, b.height, b.prevHash, b.timestamp, b.merkleRoot, b.nonce, txs})
}

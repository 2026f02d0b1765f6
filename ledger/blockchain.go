package ledger

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidBlock is returned by AddBlock when a non-genesis block points at
// a previous hash the chain does not know.
var ErrInvalidBlock = errors.New("invalid block")

// Blockchain is an append-only sequence of blocks indexed by hash and by
// height. The sequence and both indexes are updated together under mu.
type Blockchain struct {
	mu       sync.RWMutex
	blocks   []*Block // insertion order, oldest first
	byHash   map[string]*Block
	byHeight map[uint64]string
}

func NewBlockchain() *Blockchain {
	return &Blockchain{
		blocks:   make([]*Block, 0),
		byHash:   make(map[string]*Block),
		byHeight: make(map[uint64]string),
	}
}

// AddBlock validates the linkage of block and, if it holds, indexes a copy
// of it. On error the chain is left untouched.
//
// Heights are not checked for uniqueness: a second block at an existing
// height takes over the height index entry.
func (bc *Blockchain) AddBlock(block Block) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if !bc.isValidBlock(&block) {
		log.Warnf("Rejected block %s at height %d: unknown previous block %s",
			block.hash, block.height, block.prevHash)
		return fmt.Errorf("%w: unknown previous block %s at height %d",
			ErrInvalidBlock, block.prevHash, block.height)
	}

	stored := block.Clone()
	bc.byHeight[stored.height] = stored.hash
	bc.blocks = append(bc.blocks, &stored)
	bc.byHash[stored.hash] = &stored

	log.Debugf("Accepted block %s at height %d with %d transactions",
		stored.hash, stored.height, len(stored.transactions))
	return nil
}

// IsValidBlock reports whether block may be added to the chain. A genesis
// block (height 0) is always valid; any other block needs its previous hash
// to be already indexed. Height order, timestamps and the block's own hash
// are not checked.
func (bc *Blockchain) IsValidBlock(block Block) bool {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.isValidBlock(&block)
}

func (bc *Blockchain) isValidBlock(block *Block) bool {
	if block.height == 0 {
		return true
	}
	_, ok := bc.byHash[block.prevHash]
	return ok
}

// BlockByHash returns a copy of the block with the given hash.
func (bc *Blockchain) BlockByHash(hash string) (Block, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	b, ok := bc.byHash[hash]
	if !ok {
		return Block{}, false
	}
	return b.Clone(), true
}

// BlockByHeight returns a copy of the block last indexed at height.
func (bc *Blockchain) BlockByHeight(height uint64) (Block, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	hash, ok := bc.byHeight[height]
	if !ok {
		return Block{}, false
	}
	b, ok := bc.byHash[hash]
	if !ok {
		return Block{}, false
	}
	return b.Clone(), true
}

// Count returns the number of blocks added to the chain.
func (bc *Blockchain) Count() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// FindTransaction looks for txid in every block, most recently added first,
// and returns the first match. Identifiers are content hashes and their
// uniqueness across blocks is not enforced.
func (bc *Blockchain) FindTransaction(txid string) (Transaction, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	for i := len(bc.blocks) - 1; i >= 0; i-- {
		if tx, ok := bc.blocks[i].FindTransaction(txid); ok {
			return tx, true
		}
	}
	return Transaction{}, false
}

// BestHash returns the hash of the most recently added block. This is not
// necessarily the highest block if callers add blocks out of height order.
func (bc *Blockchain) BestHash() (string, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return "", false
	}
	return bc.blocks[len(bc.blocks)-1].hash, true
}

// Blocks returns copies of all blocks, most recently added first.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Block, 0, len(bc.blocks))
	for i := len(bc.blocks) - 1; i >= 0; i-- {
		out = append(out, bc.blocks[i].Clone())
	}
	return out
}

// Verify checks the integrity of the whole chain: every stored hash must
// match its recomputed header hash, every non-genesis block must link to an
// indexed block and both indexes must resolve back to the stored blocks.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	for _, b := range bc.blocks {
		if err := bc.verifyBlock(b); err != nil {
			return fmt.Errorf("block %d invalid: %w", b.height, err)
		}
	}
	return nil
}

func (bc *Blockchain) verifyBlock(b *Block) error {
	if expected := b.CalculateHash(); b.hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, b.hash)
	}
	if !bc.isValidBlock(b) {
		return fmt.Errorf("%w: unknown previous block %s", ErrInvalidBlock, b.prevHash)
	}
	if _, ok := bc.byHash[b.hash]; !ok {
		return fmt.Errorf("hash %s missing from the hash index", b.hash)
	}
	if _, ok := bc.byHeight[b.height]; !ok {
		return fmt.Errorf("height %d missing from the height index", b.height)
	}
	return nil
}

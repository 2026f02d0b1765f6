// Package ledger implements an in-memory blockchain: transactions grouped
// into blocks, blocks linked by hash references and indexed by hash and by
// height.
//
// # Core Components
//
// Transaction: inputs referencing previous outputs and outputs paying an
// amount to an address, identified by the hash of that content.
//
// Block: transactions plus a header (height, previous hash, timestamp,
// merkle root, nonce) whose hash identifies the block.
//
// Blockchain: the append-only sequence of accepted blocks with a hash index
// and a height index.
//
// # Validation
//
// A block at height 0 is a genesis block and is always accepted. Any other
// block is accepted only if its previous hash names a block already in the
// chain; otherwise AddBlock fails with ErrInvalidBlock and the chain is not
// modified. Nothing else is validated: there is no consensus, no signature
// check and no fork handling.
//
// # Usage
//
// Create a Blockchain, add a genesis block, then build each following block
// on top of BestHash. Verify can be called at any time to re-check the
// stored hashes and links.
package ledger

package main

import (
	"fmt"

	"github.com/luca-patrignani/minichain/ledger"
	"github.com/luca-patrignani/minichain/wallet"
)

const (
	genesisMerkleRoot = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	genesisNonce      = 2083236893
	finalSequence     = 0xffffffff
)

// buildChain creates a genesis block and cfg.blocks-1 blocks on top of it.
// Every block after genesis pays a coinbase reward to a fresh address and,
// from height 2, also moves the previous block's reward to a new owner.
func buildChain(cfg config) (*ledger.Blockchain, error) {
	if cfg.blocks == 0 {
		return nil, fmt.Errorf("a chain needs at least the genesis block")
	}
	bc := ledger.NewBlockchain()

	genesis := ledger.NewBlock(0, ledger.GenesisPrevHash, cfg.genesisTime, genesisMerkleRoot, genesisNonce)
	if err := bc.AddBlock(genesis); err != nil {
		return nil, fmt.Errorf("failed to add genesis block: %w", err)
	}

	var prevCoinbase ledger.Transaction
	var prevOwner wallet.KeyPair
	for i := uint64(1); i < cfg.blocks; i++ {
		best, ok := bc.BestHash()
		if !ok {
			return nil, fmt.Errorf("chain has no best block")
		}
		block := ledger.NewBlock(
			i,
			best,
			cfg.genesisTime+i*cfg.interval,
			fmt.Sprintf("merkle_root_%d", i),
			genesisNonce+uint32(i),
		)

		owner := wallet.NewKeyPair()
		coinbase, err := coinbaseTransaction(owner, cfg.reward)
		if err != nil {
			return nil, err
		}
		if i > 1 {
			spend, err := spendTransaction(prevOwner, prevCoinbase)
			if err != nil {
				return nil, err
			}
			if err := block.AddTransaction(spend); err != nil {
				return nil, err
			}
		}
		if err := block.AddTransaction(coinbase); err != nil {
			return nil, err
		}

		if err := bc.AddBlock(block); err != nil {
			return nil, fmt.Errorf("failed to add block %d: %w", i, err)
		}
		prevCoinbase, prevOwner = coinbase, owner
	}
	return bc, nil
}

func coinbaseTransaction(owner wallet.KeyPair, reward uint64) (ledger.Transaction, error) {
	addr, err := owner.Address()
	if err != nil {
		return ledger.Transaction{}, err
	}
	return ledger.NewTransaction(nil, []ledger.TxOut{{Address: addr, Amount: reward}}), nil
}

// spendTransaction moves the first output of prev to a new key pair. The
// input is signed by owner over the previous txid.
func spendTransaction(owner wallet.KeyPair, prev ledger.Transaction) (ledger.Transaction, error) {
	outputs := prev.Outputs()
	if len(outputs) == 0 {
		return ledger.Transaction{}, fmt.Errorf("transaction %s has no output to spend", prev.ID())
	}
	sig, err := owner.Sign([]byte(prev.ID()))
	if err != nil {
		return ledger.Transaction{}, err
	}
	addr, err := wallet.NewKeyPair().Address()
	if err != nil {
		return ledger.Transaction{}, err
	}
	return ledger.NewTransaction(
		[]ledger.TxIn{{PrevTxID: prev.ID(), Vout: 0, Signature: sig, Sequence: finalSequence}},
		[]ledger.TxOut{{Address: addr, Amount: outputs[0].Amount}},
	), nil
}

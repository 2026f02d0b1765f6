package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/minichain/ledger"
)

// blocksTable lays out blocks as table rows under a header row, in the
// order given.
func blocksTable(blocks []ledger.Block) pterm.TableData {
	data := pterm.TableData{{"Height", "Hash", "Prev Hash", "Timestamp", "Txs"}}
	for _, b := range blocks {
		data = append(data, []string{
			strconv.FormatUint(b.Height(), 10),
			shortHash(b.Hash()),
			shortHash(b.PrevHash()),
			strconv.FormatUint(b.Timestamp(), 10),
			strconv.Itoa(len(b.Transactions())),
		})
	}
	return data
}

func shortHash(h string) string {
	if len(h) <= 16 {
		return h
	}
	return h[:8] + ".." + h[len(h)-6:]
}

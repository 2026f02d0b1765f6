package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/minichain/common"
	"github.com/luca-patrignani/minichain/ledger"
)

type config struct {
	blocks      uint64
	genesisTime uint64
	interval    uint64
	reward      uint64
	logLevel    string
	json        bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("minichain", flag.ContinueOnError)
	fs.Uint64Var(&cfg.blocks, "blocks", 10, "number of blocks to build, genesis included")
	fs.Uint64Var(&cfg.genesisTime, "genesis-time", 1231006505, "genesis block timestamp in seconds")
	fs.Uint64Var(&cfg.interval, "interval", 600, "seconds between block timestamps")
	fs.Uint64Var(&cfg.reward, "reward", 50*100_000_000, "coinbase reward in the smallest unit")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "ledger log level (trace, debug, info, warn, error, critical, off)")
	fs.BoolVar(&cfg.json, "json", false, "dump the chain as JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.blocks == 0 {
		return config{}, fmt.Errorf("-blocks must be at least 1")
	}
	if _, ok := btclog.LevelFromString(cfg.logLevel); !ok {
		return config{}, fmt.Errorf("unknown log level %q", cfg.logLevel)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [flags]: %v\n", os.Args[0], err)
		os.Exit(2)
	}

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	backend := btclog.NewBackend(os.Stderr)
	ledgerLog := backend.Logger("LDGR")
	level, _ := btclog.LevelFromString(cfg.logLevel)
	ledgerLog.SetLevel(level)
	ledger.UseLogger(ledgerLog)

	if !cfg.json {
		pterm.DefaultBigText.WithLetters(
			putils.LettersFromStringWithStyle("Mini", pterm.FgDarkGray.ToStyle()),
			putils.LettersFromStringWithStyle("chain", pterm.FgRed.ToStyle()),
		).Render()
	}

	// The spinner writes to stdout, which carries the JSON dump.
	spinner := pterm.DefaultSpinner.WithWriter(os.Stderr)
	spinner, _ = spinner.Start(fmt.Sprintf("Building a chain of %d blocks ...", cfg.blocks))
	res := common.From(buildChain(cfg))
	if res.IsErr() {
		spinner.Fail()
		logger.Error("failed to build the chain", "error", res.UnwrapErr())
		os.Exit(1)
	}
	spinner.Success()
	bc := res.Unwrap()

	if err := bc.Verify(); err != nil {
		logger.Error("chain verification failed", "error", err)
		os.Exit(1)
	}

	if cfg.json {
		data, err := json.MarshalIndent(bc.Blocks(), "", "  ")
		if err != nil {
			logger.Error("failed to encode the chain", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(blocksTable(bc.Blocks())).Render(); err != nil {
		logger.Warn("failed to render the block table", "error", err)
	}
	pterm.Success.Println("Chain verified")

	best, _ := bc.BestHash()
	fmt.Printf("Block count: %d\n", bc.Count())
	fmt.Printf("Best block hash: %s\n", best)
}

package ledger

import "github.com/btcsuite/btclog"

// log is the subsystem logger. It is disabled until UseLogger is called.
var log = btclog.Disabled

// DisableLog disables all library log output.
func DisableLog() {
	log = btclog.Disabled
}

// UseLogger sets the logger used by the ledger package.
func UseLogger(logger btclog.Logger) {
	log = logger
}

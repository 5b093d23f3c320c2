package walletwire

import (
	"github.com/btcsuite/btclog"
	"github.com/zoobzio/walletwire/mnemonic"
)

// log is a logger that is initialized with no output filters.  This
// means the package will not perform any logging by default until the caller
// requests it.
var log btclog.Logger

// The default amount of logging is none.
func init() {
	DisableLog()
}

// DisableLog disables all library log output.  Logging output is disabled
// by default until UseLogger is called.
func DisableLog() {
	log = btclog.Disabled
	mnemonic.DisableLog()
}

// UseLogger uses a specified Logger to output package logging info.
// The mnemonic package logs through the same logger.
func UseLogger(logger btclog.Logger) {
	log = logger
	mnemonic.UseLogger(logger)
}

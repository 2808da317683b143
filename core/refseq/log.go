package refseq

import "github.com/ethereum/go-ethereum/log"

// logger resolves the root at call time so it follows cmdutil.InitLogger.
func logger() log.Logger { return log.Root().With("pkg", "refseq") }

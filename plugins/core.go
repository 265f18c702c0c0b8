package plugins

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/amberledger/goamber/plugins/banner"
	"github.com/amberledger/goamber/plugins/chainstate"
	"github.com/amberledger/goamber/plugins/config"
	"github.com/amberledger/goamber/plugins/gracefulshutdown"
	"github.com/amberledger/goamber/plugins/logger"
	"github.com/amberledger/goamber/plugins/txresolver"
)

// Core contains the core plugins of a goamber node.
var Core = node.Plugins(
	banner.Plugin,
	config.Plugin,
	logger.Plugin,
	gracefulshutdown.Plugin,
	chainstate.Plugin,
	txresolver.Plugin,
)

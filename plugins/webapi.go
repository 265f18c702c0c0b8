package plugins

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/amberledger/goamber/plugins/webapi"
	"github.com/amberledger/goamber/plugins/webapi/info"
	"github.com/amberledger/goamber/plugins/webapi/txresolver"
)

// WebAPI contains the webapi endpoint plugins of a goamber node.
var WebAPI = node.Plugins(
	webapi.Plugin,
	info.Plugin,
	txresolver.Plugin,
)

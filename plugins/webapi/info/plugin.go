package info

import (
	"net/http"
	"strconv"

	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"go.uber.org/dig"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/jsonmodels"
	"github.com/amberledger/goamber/plugins/banner"
	webapitxresolver "github.com/amberledger/goamber/plugins/webapi/txresolver"
)

// PluginName is the name of the web API info endpoint plugin.
const PluginName = "WebAPIInfoEndpoint"

var (
	// Plugin is the plugin instance of the web API info endpoint plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)
)

type dependencies struct {
	dig.In

	Server *echo.Echo
	Reader chainstate.Reader
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure)
}

func configure(_ *node.Plugin) {
	deps.Server.GET("info", getInfo)
}

// getInfo returns the chain parameters the node currently serves.
func getInfo(c echo.Context) error {
	systemState := deps.Reader.SystemStateSummary()

	return c.JSON(http.StatusOK, jsonmodels.InfoResponse{
		Version:              banner.AppVersion,
		ChainIdentifier:      deps.Reader.ChainIdentifier(),
		Epoch:                strconv.FormatUint(systemState.Epoch, 10),
		ProtocolVersion:      systemState.ProtocolVersion,
		ReferenceGasPrice:    strconv.FormatUint(systemState.ReferenceGasPrice, 10),
		ResolvedTransactions: webapitxresolver.ResolvedCount(),
	})
}

package txresolver

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"go.uber.org/atomic"
	"go.uber.org/dig"

	"github.com/amberledger/goamber/packages/jsonmodels"
	"github.com/amberledger/goamber/packages/txresolver"
	"github.com/amberledger/goamber/plugins/webapi"
)

// PluginName is the name of the web API txresolver endpoint plugin.
const PluginName = "WebAPITxResolverEndpoint"

var (
	// Plugin is the plugin instance of the web API txresolver endpoint plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)
	log    *logger.Logger

	resolvedCounter atomic.Uint64
)

type dependencies struct {
	dig.In

	Server   *echo.Echo
	Resolver *txresolver.Resolver
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure)
}

func configure(_ *node.Plugin) {
	log = logger.NewLogger(PluginName)
	deps.Server.POST("transactions/resolve", resolveTransaction)
}

// resolveTransaction resolves the submitted partially specified transaction against the latest chain state and
// returns the fully resolved transaction, optionally together with a simulation of it.
func resolveTransaction(c echo.Context) error {
	var request jsonmodels.UnresolvedTransactionRequest
	if err := c.Bind(&request); err != nil {
		log.Debugf("failed to bind request: %s", err)
		return c.JSON(http.StatusBadRequest, webapi.NewErrorResponse(err))
	}

	unresolvedTransaction, err := request.ToLedgerstateTransaction()
	if err != nil {
		return c.JSON(http.StatusBadRequest, webapi.NewErrorResponse(err))
	}

	simulate := false
	if simulateParam := c.QueryParam("simulate"); simulateParam != "" {
		if simulate, err = strconv.ParseBool(simulateParam); err != nil {
			return c.JSON(http.StatusBadRequest, webapi.NewErrorResponse(errors.Errorf("invalid simulate parameter: %v", err)))
		}
	}

	result, err := deps.Resolver.ResolveTransaction(unresolvedTransaction, simulate)
	if err != nil {
		return c.JSON(statusCodeOf(err), webapi.NewErrorResponse(err))
	}
	resolvedCounter.Inc()

	if c.Request().Header.Get(echo.HeaderAccept) == echo.MIMEOctetStream {
		return c.Blob(http.StatusOK, echo.MIMEOctetStream, result.Transaction.Bytes())
	}

	return c.JSON(http.StatusOK, jsonmodels.NewResolveTransactionResponse(result))
}

// statusCodeOf maps the error taxonomy of the resolver onto HTTP status codes.
func statusCodeOf(err error) int {
	switch {
	case errors.Is(err, txresolver.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, txresolver.ErrInvalidInput), errors.Is(err, txresolver.ErrInsufficientFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ResolvedCount returns the number of successfully resolved transactions since startup.
func ResolvedCount() uint64 {
	return resolvedCounter.Load()
}

package client

import (
	"fmt"
	"net/http"

	"github.com/amberledger/goamber/packages/jsonmodels"
)

const (
	routeResolveTransaction = "transactions/resolve"
)

// ResolveTransaction completes the missing fields of the given partially specified transaction and returns the fully
// resolved transaction. If simulate is true, the response additionally contains the effects of a dry run of the
// resolved transaction.
func (api *GoAmberAPI) ResolveTransaction(request *jsonmodels.UnresolvedTransactionRequest, simulate bool) (*jsonmodels.ResolveTransactionResponse, error) {
	res := &jsonmodels.ResolveTransactionResponse{}
	route := routeResolveTransaction
	if simulate {
		route = fmt.Sprintf("%s?simulate=true", routeResolveTransaction)
	}
	if err := api.do(http.MethodPost, route, request, res); err != nil {
		return nil, err
	}
	return res, nil
}

package webapi

import (
	"github.com/iotaledger/hive.go/configuration"
)

// Parameters contains the configuration parameters of the web API plugin.
var Parameters = struct {
	// BindAddress is the bind address for the web API.
	BindAddress string `default:"127.0.0.1:8080" usage:"the bind address for the web API"`
}{}

func init() {
	configuration.BindParameters(&Parameters, "webapi")
}

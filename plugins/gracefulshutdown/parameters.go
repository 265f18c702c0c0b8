package gracefulshutdown

import (
	"time"

	"github.com/iotaledger/hive.go/configuration"
)

// Parameters contains the configuration parameters of the graceful shutdown plugin.
var Parameters = struct {
	// WaitToKillTime is the maximum amount of time to wait for background workers to terminate.
	WaitToKillTime time.Duration `default:"10s" usage:"maximum amount of time to wait for background workers to terminate"`
}{}

func init() {
	configuration.BindParameters(&Parameters, "gracefulShutdown")
}

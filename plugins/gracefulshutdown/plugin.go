package gracefulshutdown

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
)

// PluginName is the name of the graceful shutdown plugin.
const PluginName = "GracefulShutdown"

var (
	// Plugin is the plugin instance of the graceful shutdown plugin.
	Plugin *node.Plugin
	log    *logger.Logger
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)
}

func configure(_ *node.Plugin) {
	log = logger.NewLogger(PluginName)

	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-gracefulStop

		waitToKillTime := Parameters.WaitToKillTime
		log.Warnf("Received shutdown request - waiting (max %s) for background workers to finish ...", waitToKillTime)

		go func() {
			start := time.Now()
			for now := range time.Tick(1 * time.Second) {
				sinceStart := now.Sub(start)

				if sinceStart > waitToKillTime {
					log.Error("Background workers did not terminate in time! Forcing shutdown ...")
					os.Exit(1)
				}

				workerList := ""
				if runningWorkers := daemon.GetRunningBackgroundWorkers(); len(runningWorkers) >= 1 {
					workerList = " (" + strings.Join(runningWorkers, ", ") + ")"
				}
				log.Warnf("Waiting (max %s) for background workers to finish%s ...", waitToKillTime-sinceStart.Round(time.Second), workerList)
			}
		}()

		daemon.Shutdown()
	}()
}

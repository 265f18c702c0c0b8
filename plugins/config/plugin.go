package config

import (
	"fmt"
	"os"

	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/node"
	flag "github.com/spf13/pflag"
	"go.uber.org/dig"
)

// PluginName is the name of the config plugin.
const PluginName = "Config"

var (
	// Plugin is the plugin instance of the config plugin.
	Plugin *node.Plugin

	// flags
	configFilePath      = flag.StringP("config", "c", "config.json", "file path of the config file")
	skipConfigAvailable = flag.Bool("skip-config", false, "skip config file availability check")

	_config = configuration.New()
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled)

	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		if err := loadConfig(); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}

		if err := container.Provide(func() *configuration.Configuration {
			return _config
		}); err != nil {
			Plugin.Panic(err)
		}
	}))
}

// Configuration returns the shared configuration instance.
func Configuration() *configuration.Configuration {
	return _config
}

// loadConfig reads the config file (unless skipped) and overlays the command line flags.
func loadConfig() error {
	if err := _config.LoadFile(*configFilePath); err != nil {
		if !os.IsNotExist(err) || !*skipConfigAvailable {
			return fmt.Errorf("loading config file %s failed: %w", *configFilePath, err)
		}
	}

	flag.Parse()

	return _config.LoadFlagSet(flag.CommandLine)
}

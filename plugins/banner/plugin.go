package banner

import (
	"fmt"

	"github.com/iotaledger/hive.go/node"
)

// PluginName is the name of the banner plugin.
const PluginName = "Banner"

const (
	// AppName is the name of the application.
	AppName = "goamber"

	// AppVersion is the version of the application.
	AppVersion = "v0.1.0"
)

// Plugin is the plugin instance of the banner plugin.
var Plugin *node.Plugin

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)
}

func configure(_ *node.Plugin) {
	fmt.Printf(`
   __ _  ___   __ _ _ __ ___ | |__   ___ _ __
  / _' |/ _ \ / _' | '_ ' _ \| '_ \ / _ \ '__|
 | (_| | (_) | (_| | | | | | | |_) |  __/ |
  \__, |\___/ \__,_|_| |_| |_|_.__/ \___|_|
  |___/

               %s - %s

`, AppName, AppVersion)
}

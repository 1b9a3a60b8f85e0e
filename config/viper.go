// Package config holds hexpad settings in viper under the "hexpad." prefix.
package config

import (
	"bytes"
	"log"
	"strings"

	"github.com/spf13/viper"
)

const Prefix = "hexpad"

// Init sets defaults and, with debug enabled, logs the merged configuration.
func Init() {
	ViperSetDefault("line_length", DefaultLineLength)
	ViperSetDefault("bytes_per_line", DefaultBytesPerLine)
	ViperSetDefault("encoding", DefaultEncoding)
	ViperSetDefault("color", "auto")
	if ViperGetBool("debug") {
		var buf bytes.Buffer
		err := viper.WriteConfigTo(&buf)
		if err != nil {
			log.Printf("config: %v\n", err)
			return
		}
		log.Printf("config file: %s\n### START ###\n%s\n### END ###\n", viper.ConfigFileUsed(), buf.String())
	}
}

// ViperKey maps a flag or setting name to its namespaced viper key.
func ViperKey(key string) string {
	return Prefix + "." + strings.ReplaceAll(key, "-", "_")
}

func ViperGetString(key string) string {
	return viper.GetString(ViperKey(key))
}

func ViperGetBool(key string) bool {
	return viper.GetBool(ViperKey(key))
}

func ViperGetInt(key string) int {
	return viper.GetInt(ViperKey(key))
}

func ViperSetDefault(key string, value any) {
	viper.SetDefault(ViperKey(key), value)
}

func ViperSet(key string, value any) {
	viper.Set(ViperKey(key), value)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/certhub/certhub/config/configkey"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var loadConfigMutex sync.Mutex
var configLoaded bool

var DefaultValues = map[string]interface{}{
	configkey.DebugMode:     true,
	configkey.LogLevel:      "trace",
	configkey.RequestLogger: false,

	configkey.DatabaseUsername: "manager",
	configkey.DatabaseDatabase: "certhub",
	configkey.DatabaseHost:     "localhost",
	configkey.DatabasePort:     5432,
	configkey.DatabaseSSLMode:  "disable",
	configkey.DatabaseTimezone: "America/New_York",
	configkey.DatabasePassword: "password",

	configkey.MinioHost:      "localhost",
	configkey.MinioSecretKey: "password",
	configkey.MinioAccessKey: "user",
	configkey.MinioSecure:    false,

	configkey.HubPort: 8892,
	configkey.HubURL:  "http://localhost:8892",

	configkey.StoreBackend: "postgres",

	configkey.IssuanceAutopick: false,

	configkey.ArchiveEnabled: false,
	configkey.ArchiveBucket:  "certificates",
}

func LoadConfig() {
	loadConfigMutex.Lock()
	defer loadConfigMutex.Unlock()
	if !configLoaded {
		configLoaded = true

		explicitConfigFile := os.Getenv("CONFIG_FILE")
		if explicitConfigFile != "" {
			fmt.Printf("CONFIG_FILE: %s\n", explicitConfigFile)
			viper.SetConfigFile(explicitConfigFile)
		} else {
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
			viper.AddConfigPath("/opt/certhub") // path to look for the config file in

			otherPath := os.Getenv("CONFIG_FILE_PATH")
			viper.AddConfigPath(otherPath)
		}

		// set defaults first
		for key, val := range DefaultValues {
			viper.SetDefault(key, val)
		}

		viper.SetEnvPrefix("certhub")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		err := viper.ReadInConfig() // Find and read the config file
		if err != nil {             // Handle errors reading the config file
			logrus.Warn("Config file not found, using defaults")
		}
	}
}

func MustGetString(key string) string {
	val := viper.GetString(key)
	if len(val) == 0 {
		panic(errors.New("failed to get " + key))
	}

	return val
}

package configs

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	DataDir         string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "go-todo"),
		DataDir:         getStringOrDefault("TODO_DATA_DIR", defaultDataDir()),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// defaultDataDir places task and session data under the user home, falling
// back to the working directory when no home is resolvable.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".go-todo"
	}
	return filepath.Join(home, ".go-todo")
}

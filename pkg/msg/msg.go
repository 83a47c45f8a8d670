package msg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

// defaultMessages keeps the catalog usable when no messages file is present
// (library consumers and tests run from arbitrary directories). A messages
// file, when found, overrides these entries.
var defaultMessages = map[string]string{
	"app.start":   "starting go-todo",
	"app.started": "go-todo started",

	"todo.error.empty-title":    "task title cannot be empty",
	"todo.error.not-found":      "task not found",
	"todo.error.add-failed":     "failed to add task",
	"todo.error.update-failed":  "failed to update task",
	"todo.error.delete-failed":  "failed to delete task",
	"todo.error.load-failed":    "failed to load tasks",
	"subtask.error.empty-title": "subtask title cannot be empty",
	"subtask.error.not-found":   "subtask not found",

	"session.error.missing": "no active session, please login again",
	"session.error.expired": "session expired, please login again",

	"auth.error.empty-credentials": "username and password are required",
	"auth.error.empty-fields":      "username, email and password are required",
	"auth.error.login-failed":      "login failed",
	"auth.error.register-failed":   "registration failed",
	"auth.login.success":           "logged in as {0}",
	"auth.logout.success":          "logged out",

	"api.error.request-failed": "request to backend failed",
}

// init loads message overrides from YAML when a catalog file exists.
func init() {
	messages = make(map[string]string, len(defaultMessages))
	for k, v := range defaultMessages {
		messages[k] = v
	}

	var value, ok = os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	Init(value)
}

func Init(filepath string) {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return
	}

	parseMessageMap("", v.AllSettings(), messages)
}

// parseMessageMap reads the yml tree recursively into flat dot-path keys.
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns a message by key, replacing {0}, {1}, ... placeholders
// with the given arguments. Non-primitive arguments are rendered as JSON.
func GetMessage(key string, args ...interface{}) string {
	message, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		var argStr string

		if isPrimitive(arg) {
			argStr = primitiveToString(arg)
		} else {
			jsonBytes, err := json.Marshal(arg)
			if err != nil {
				argStr = fmt.Sprintf("%v", arg)
			} else {
				argStr = string(jsonBytes)
			}
		}

		message = strings.ReplaceAll(message, placeholder, argStr)
	}

	return message
}

func isPrimitive(value interface{}) bool {
	switch value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%d", v)
	}
}

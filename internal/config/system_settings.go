package config

import (
	"strings"

	"github.com/spf13/viper"
)

const DATABASE_TYPE = "RVM_DATABASE_TYPE"
const DATABASE_URL = "RVM_DATABASE_URL"
const DATABASE_SQLLITE_FILE_NAME = "RVM_DATABASE_SQLLITE_FILE_NAME"
const SERVER_WEB_PORT = "RVM_SERVER_WEB_PORT"
const API_KEY_HASH = "RVM_API_KEY_HASH" // bcrypt hash of the key allowed to publish
const LOG_LEVEL = "RVM_LOG_LEVEL"
const PUBLISH_ON_START = "RVM_PUBLISH_ON_START" // publish the catalog before serving

const DATABASE_TYPE_POSTGRES = "POSTGRES"
const DATABASE_TYPE_MYSQL = "MYSQL"
const DATABASE_TYPE_SQLLITE = "SQLLITE"

var settings = newSettings()

func newSettings() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(DATABASE_TYPE, DATABASE_TYPE_SQLLITE)
	v.SetDefault(DATABASE_SQLLITE_FILE_NAME, "./relvalmatrix.db")
	v.SetDefault(SERVER_WEB_PORT, "8080")
	v.SetDefault(LOG_LEVEL, "info")
	v.SetDefault(PUBLISH_ON_START, "true")
	return v
}

// LoadFile reads settings from a config file. Keys in the file use the same names as
// the environment variables; the environment still wins over the file.
func LoadFile(path string) error {
	if path == "" {
		return nil
	}
	settings.SetConfigFile(path)
	return settings.ReadInConfig()
}

// Set overrides a setting for the lifetime of the process, e.g. from a CLI flag.
func Set(settingKey string, value string) {
	settings.Set(settingKey, value)
}

// Reset drops overrides and file values, keeping environment and defaults.
func Reset() {
	settings = newSettings()
}

func GetSystemSettingInteger(settingKey string) int {
	return settings.GetInt(settingKey)
}

func GetSystemSettingBool(settingKey string) bool {
	return settings.GetBool(settingKey)
}

func GetSystemSettingString(settingKey string) string {
	return strings.TrimSpace(settings.GetString(settingKey))
}

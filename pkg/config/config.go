package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y
// opcionalmente archivo). Nada de URLs ni tokens embebidos en el código:
// todo entra por aquí y se inyecta a los constructores.
type Config struct {
	App   AppConfig
	API   APIConfig
	Store StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuración del backend de inventario remoto.
type APIConfig struct {
	BaseURL        string // ej. https://stockbox.example.com/api
	TimeoutSeconds int    // timeout por petición; vencido → error de red
}

// Timeout devuelve el timeout como time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StoreConfig configuración del almacenamiento local (bitácora y token).
type StoreConfig struct {
	DataDir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// un archivo .env en el directorio actual). Las env vars tienen prioridad.
// Nombres esperados: APP_ENV, STOCKBOX_API_URL, STOCKBOX_DATA_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "stockbox"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "STOCKBOX_API_URL", "http://localhost:4000/api"),
			TimeoutSeconds: getInt(v, "STOCKBOX_TIMEOUT_SECONDS", 15),
		},
		Store: StoreConfig{
			DataDir: getString(v, "STOCKBOX_DATA_DIR", defaultDataDir()),
		},
	}

	return cfg, nil
}

// defaultDataDir resuelve ~/.stockbox; si no hay home usable cae al
// directorio actual.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stockbox"
	}
	return filepath.Join(home, ".stockbox")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string
		AppName  string
		Build    string

		Server   ServerConfig
		Auth     AuthConfig
		Geofence GeofenceConfig
		Storage  StorageConfig
		Database DatabaseConfig

		RollbarToken string
	}

	ServerConfig struct {
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
		AllowedOrigins  []string
		StaticDir       string
	}

	AuthConfig struct {
		AdminUsername string
		AdminSecret   string
	}

	GeofenceConfig struct {
		Latitude           float64
		Longitude          float64
		RadiusKm           float64
		RequireCoordinates bool
	}

	StorageConfig struct {
		Backend       string // jsonfile | postgres | inmem
		RosterPath    string
		LedgerPath    string
		TimetablePath string
	}

	DatabaseConfig struct {
		Host       string
		Port       int
		User       string
		Password   string
		Name       string
		DisableTLS bool
	}
)

// NewConfig builds the app Config from defaults, an optional
// config/.env.<env> file and environment variables (highest precedence).
func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults; the geofence reference point is the campus main gate
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Rollcall")
	v.SetDefault("build", "dev")

	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.debugAddr", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.staticDir", "")

	v.SetDefault("auth.adminUsername", "admin")
	v.SetDefault("auth.adminSecret", "adminpass")

	v.SetDefault("geofence.latitude", 23.5492)
	v.SetDefault("geofence.longitude", 87.2912)
	v.SetDefault("geofence.radiusKm", 0.5)
	v.SetDefault("geofence.requireCoordinates", false)

	v.SetDefault("storage.backend", "jsonfile")
	v.SetDefault("storage.rosterPath", "students.json")
	v.SetDefault("storage.ledgerPath", "attendance.json")
	v.SetDefault("storage.timetablePath", "")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "rollcall")
	v.SetDefault("database.disableTLS", true)

	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	v.SetDefault("env", env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		Debug:    v.GetBool("debug"),
		TestMode: env == "TEST",
		Env:      env,
		AppName:  v.GetString("appName"),
		Build:    v.GetString("build"),
		Server: ServerConfig{
			Addr:            v.GetString("server.addr"),
			DebugAddr:       v.GetString("server.debugAddr"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			AllowedOrigins:  v.GetStringSlice("server.allowedOrigins"),
			StaticDir:       v.GetString("server.staticDir"),
		},
		Auth: AuthConfig{
			AdminUsername: v.GetString("auth.adminUsername"),
			AdminSecret:   v.GetString("auth.adminSecret"),
		},
		Geofence: GeofenceConfig{
			Latitude:           v.GetFloat64("geofence.latitude"),
			Longitude:          v.GetFloat64("geofence.longitude"),
			RadiusKm:           v.GetFloat64("geofence.radiusKm"),
			RequireCoordinates: v.GetBool("geofence.requireCoordinates"),
		},
		Storage: StorageConfig{
			Backend:       v.GetString("storage.backend"),
			RosterPath:    v.GetString("storage.rosterPath"),
			LedgerPath:    v.GetString("storage.ledgerPath"),
			TimetablePath: v.GetString("storage.timetablePath"),
		},
		Database: DatabaseConfig{
			Host:       v.GetString("database.host"),
			Port:       v.GetInt("database.port"),
			User:       v.GetString("database.user"),
			Password:   v.GetString("database.password"),
			Name:       v.GetString("database.name"),
			DisableTLS: v.GetBool("database.disableTLS"),
		},
		RollbarToken: v.GetString("rollbarToken"),
	}
}

package core

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address         string
		Host            string
		DebugHost       string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		CORSOrigins     []string
	}

	DatabaseConfig struct {
		Engine        string // postgres | memory
		Host          string
		Port          string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}

	ClientConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	Config struct {
		AppName      string
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		Timezone     string
		RollbarToken string
		Server       ServerConfig
		Database     DatabaseConfig
		Client       ClientConfig

		location *time.Location
	}
)

const (
	EngineMemory   = "memory"
	EnginePostgres = "postgres"
)

func (dbConf DatabaseConfig) Address() string {
	return net.JoinHostPort(dbConf.Host, dbConf.Port)
}

// Location is the time zone "today" is computed in.
func (conf *Config) Location() *time.Location {
	if conf.location == nil {
		return time.UTC
	}
	return conf.location
}

// NewConfig loads the configuration from the defaults, an optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed by the environment name, eg. DEV_DATABASE_HOST, PROD_SERVER_ADDRESS.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Horario")
	v.SetDefault("build", "develop")
	v.SetDefault("timezone", "America/Bogota")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 10*time.Second)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.corsOrigins", []string{"http://localhost:3000"})
	v.SetDefault("database.engine", EnginePostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "horario_estudiantil")
	v.SetDefault("database.user", "horario")
	v.SetDefault("database.password", "horario")
	v.SetDefault("database.adminUser", "postgres")
	v.SetDefault("database.adminPassword", "")
	v.SetDefault("database.disableTLS", true)
	v.SetDefault("client.baseURL", "http://localhost:8000")
	v.SetDefault("client.timeout", 10*time.Second)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Timezone:     v.GetString("timezone"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			Host:            v.GetString("server.host"),
			DebugHost:       v.GetString("server.debugHost"),
			ReadTimeout:     v.GetDuration("server.readTimeout"),
			WriteTimeout:    v.GetDuration("server.writeTimeout"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			CORSOrigins:     v.GetStringSlice("server.corsOrigins"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("database.engine"),
			Host:          v.GetString("database.host"),
			Port:          v.GetString("database.port"),
			Name:          v.GetString("database.name"),
			User:          v.GetString("database.user"),
			Password:      v.GetString("database.password"),
			AdminUser:     v.GetString("database.adminUser"),
			AdminPassword: v.GetString("database.adminPassword"),
			DisableTLS:    v.GetBool("database.disableTLS"),
		},
		Client: ClientConfig{
			BaseURL: v.GetString("client.baseURL"),
			Timeout: v.GetDuration("client.timeout"),
		},
	}

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		log.Fatalf("config.LoadLocation(%s): %v", conf.Timezone, err)
	}
	conf.location = loc

	return conf
}

// NewTestConfig returns an in-memory configuration for tests.
func NewTestConfig(loc *time.Location) *Config {
	if loc == nil {
		loc = time.UTC
	}
	return &Config{
		AppName:  "Horario",
		Env:      "TEST",
		Build:    "test",
		TestMode: true,
		Timezone: loc.String(),
		Server: ServerConfig{
			ShutdownTimeout: time.Second,
		},
		Database: DatabaseConfig{Engine: EngineMemory},
		Client:   ClientConfig{Timeout: 5 * time.Second},
		location: loc,
	}
}

// String is used for startup logs; it never prints secrets.
func (conf *Config) String() string {
	return fmt.Sprintf("env=%s build=%s debug=%t tz=%s db=%s@%s/%s",
		conf.Env, conf.Build, conf.Debug, conf.Location(), conf.Database.Engine, conf.Database.Address(), conf.Database.Name)
}

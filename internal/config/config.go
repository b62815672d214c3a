// Configuration is loaded from a yaml file that is placed on the server.
// Unknown keys are rejected, so typos are detected at startup.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type DatabaseType string

const (
	Inmemory DatabaseType = "inmemory"
	Mysql    DatabaseType = "mysql"
	Redis    DatabaseType = "redis"
)

type (
	Application struct {
		Service  ServiceConfig  `yaml:"service"`
		Server   ServerConfig   `yaml:"server"`
		Database DatabaseConfig `yaml:"database"`
		Security SecurityConfig `yaml:"security"`
		Logging  LoggingConfig  `yaml:"logging"`
	}

	ServiceConfig struct {
		Name          string `yaml:"name"`
		BackendURL    string `yaml:"backend_url"`
		BackendPath   string `yaml:"backend_path"`
		BackendApiKey string `yaml:"backend_api_key"`
		AssetPath     string `yaml:"asset_path"`
		ManifestPath  string `yaml:"manifest_path"`
		StaticDir     string `yaml:"static_dir"`
	}

	ServerConfig struct {
		BaseAddress  string `yaml:"address"`
		Port         int    `yaml:"port"`
		ReadTimeout  int    `yaml:"read_timeout_seconds"`
		WriteTimeout int    `yaml:"write_timeout_seconds"`
		IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	}

	// DatabaseConfig configures the session store.
	DatabaseConfig struct {
		Use               DatabaseType `yaml:"use"`
		Username          string       `yaml:"username"`
		Password          string       `yaml:"password"`
		Database          string       `yaml:"database"`
		Parameters        []string     `yaml:"parameters"`
		RedisAddress      string       `yaml:"redis_address"`
		RedisPassword     string       `yaml:"redis_password"`
		RedisDB           int          `yaml:"redis_db"`
		SessionTTLSeconds int          `yaml:"session_ttl_seconds"`
	}

	SecurityConfig struct {
		AdminScope      string              `yaml:"admin_scope"`
		InsecureCookies bool                `yaml:"insecure_cookies"`
		Oidc            OpenIdConnectConfig `yaml:"oidc"`
	}

	OpenIdConnectConfig struct {
		IssuerURL          string   `yaml:"issuer_url"`
		ClientID           string   `yaml:"client_id"`
		ClientSecret       string   `yaml:"client_secret"`
		RedirectURL        string   `yaml:"redirect_url"`
		SignOutRedirectURL string   `yaml:"sign_out_redirect_url"`
		Scopes             []string `yaml:"scopes"`
	}

	LoggingConfig struct {
		Severity string `yaml:"severity"`
		Style    string `yaml:"style"`
	}
)

const (
	defaultSessionTTL = 4 * time.Hour
	defaultAdminScope = "MPDP.Admin"
	defaultAssetPath  = "/public"
)

var (
	activeConfig *Application
	configLock   sync.RWMutex
)

var ErrConfigNotLoaded = errors.New("configuration has not been loaded")

func UnmarshalFromYamlConfiguration(r io.Reader) (*Application, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	conf := &Application{}
	if err := d.Decode(conf); err != nil {
		return nil, err
	}

	applyDefaults(conf)
	return conf, nil
}

// LoadConfiguration reads, validates and activates the configuration file at path.
func LoadConfiguration(path string, logFunc func(format string, v ...interface{})) (*Application, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file %s: %w", path, err)
	}
	defer f.Close()

	conf, err := UnmarshalFromYamlConfiguration(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}

	if err := Validate(conf, logFunc); err != nil {
		return nil, err
	}

	SetApplicationConfig(conf)
	return conf, nil
}

func SetApplicationConfig(conf *Application) {
	configLock.Lock()
	defer configLock.Unlock()
	activeConfig = conf
}

func GetApplicationConfig() (*Application, error) {
	configLock.RLock()
	defer configLock.RUnlock()
	if activeConfig == nil {
		return nil, ErrConfigNotLoaded
	}
	return activeConfig, nil
}

func applyDefaults(conf *Application) {
	if conf.Security.AdminScope == "" {
		conf.Security.AdminScope = defaultAdminScope
	}
	if conf.Service.AssetPath == "" {
		conf.Service.AssetPath = defaultAssetPath
	}
	if conf.Database.SessionTTLSeconds == 0 {
		conf.Database.SessionTTLSeconds = int(defaultSessionTTL.Seconds())
	}
	if len(conf.Security.Oidc.Scopes) == 0 {
		conf.Security.Oidc.Scopes = []string{"openid", "profile", "email", "offline_access"}
	}
	if conf.Logging.Style == "" {
		conf.Logging.Style = "plain"
	}
}

func (c DatabaseConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

// BackendBaseURL is the url prefix all backend api paths are appended to.
func (c ServiceConfig) BackendBaseURL() string {
	return c.BackendURL + c.BackendPath
}

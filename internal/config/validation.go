package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
)

func Validate(conf *Application, logFunc func(format string, v ...interface{})) error {
	errs := url.Values{}
	validateServiceConfiguration(errs, conf.Service)
	validateServerConfiguration(errs, conf.Server)
	validateDatabaseConfiguration(errs, conf.Database)
	validateSecurityConfiguration(errs, conf.Security)
	validateLoggingConfiguration(errs, conf.Logging)

	if len(errs) > 0 {
		logValidationErrorDetails(errs, logFunc)
		return errors.New("configuration values failed to validate, bailing out")
	}

	return nil
}

const downstreamPattern = "^https?://.*[^/]$"
const backendPathPattern = "^(/.*[^/])?$"

func validateServiceConfiguration(errs url.Values, c ServiceConfig) {
	checkLength(&errs, 1, 256, "service.name", c.Name)
	if violatesPattern(downstreamPattern, c.BackendURL) {
		errs.Add("service.backend_url", "base url must start with http:// or https:// and may not end in a /")
	}
	if violatesPattern(backendPathPattern, c.BackendPath) {
		errs.Add("service.backend_path", "path must be empty or start with a / and may not end in a /")
	}
	if c.BackendApiKey != "" {
		checkLength(&errs, 16, 256, "service.backend_api_key", c.BackendApiKey)
	}
}

func validateServerConfiguration(errs url.Values, c ServerConfig) {
	checkIntValueRange(errs, 1, 65535, "server.port", c.Port)
	checkIntValueRange(errs, 1, 300, "server.read_timeout_seconds", c.ReadTimeout)
	checkIntValueRange(errs, 1, 300, "server.write_timeout_seconds", c.WriteTimeout)
	checkIntValueRange(errs, 1, 300, "server.idle_timeout_seconds", c.IdleTimeout)
}

var allowedDatabases = []DatabaseType{Mysql, Inmemory, Redis}

func validateDatabaseConfiguration(errs url.Values, c DatabaseConfig) {
	if notInAllowedValues(allowedDatabases[:], c.Use) {
		errs.Add("database.use", "must be one of mysql, inmemory, redis")
	}
	if c.Use == Mysql {
		checkLength(&errs, 1, 256, "database.username", c.Username)
		checkLength(&errs, 1, 256, "database.password", c.Password)
		checkLength(&errs, 1, 256, "database.database", c.Database)
	}
	if c.Use == Redis {
		checkLength(&errs, 1, 256, "database.redis_address", c.RedisAddress)
		checkIntValueRange(errs, 0, 15, "database.redis_db", c.RedisDB)
	}
	checkIntValueRange(errs, 60, 86400, "database.session_ttl_seconds", c.SessionTTLSeconds)
}

func validateSecurityConfiguration(errs url.Values, c SecurityConfig) {
	checkLength(&errs, 1, 256, "security.admin_scope", c.AdminScope)
	if violatesPattern(downstreamPattern, c.Oidc.IssuerURL) {
		errs.Add("security.oidc.issuer_url", "issuer url must start with http:// or https:// and may not end in a /")
	}
	checkLength(&errs, 1, 256, "security.oidc.client_id", c.Oidc.ClientID)
	checkLength(&errs, 1, 256, "security.oidc.client_secret", c.Oidc.ClientSecret)
	if violatesPattern(downstreamPattern, c.Oidc.RedirectURL) {
		errs.Add("security.oidc.redirect_url", "redirect url must start with http:// or https:// and may not end in a /")
	}
	if violatesPattern(downstreamPattern, c.Oidc.SignOutRedirectURL) {
		errs.Add("security.oidc.sign_out_redirect_url", "redirect url must start with http:// or https:// and may not end in a /")
	}
}

var allowedSeverities = []string{"DEBUG", "INFO", "WARN", "ERROR"}
var allowedStyles = []string{"plain", "json"}

func validateLoggingConfiguration(errs url.Values, c LoggingConfig) {
	if notInAllowedValues(allowedSeverities[:], c.Severity) {
		errs.Add("logging.severity", "must be one of DEBUG, INFO, WARN, ERROR")
	}
	if notInAllowedValues(allowedStyles[:], c.Style) {
		errs.Add("logging.style", "must be one of plain, json")
	}
}

func violatesPattern(pattern string, value string) bool {
	matched, err := regexp.MatchString(pattern, value)
	if err != nil {
		return true
	}
	return !matched
}

func checkLength(errs *url.Values, min int, max int, key string, value string) {
	if len(value) < min || len(value) > max {
		errs.Add(key, fmt.Sprintf("%s field must be at least %d and at most %d characters long", key, min, max))
	}
}

func checkIntValueRange(errs url.Values, min int, max int, key string, value int) {
	if value < min || value > max {
		errs.Add(key, fmt.Sprintf("%s field must be an integer at least %d and at most %d", key, min, max))
	}
}

func notInAllowedValues[T comparable](allowed []T, value T) bool {
	return !sliceContains(allowed, value)
}

func sliceContains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

func logValidationErrorDetails(errs url.Values, logFunc func(format string, v ...interface{})) {
	var keys []string
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		val := errs[k]
		logFunc("configuration error: %s: %s", key, val[0])
	}
}

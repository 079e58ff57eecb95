package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	DB   DBConfig
	JWT  JWTConfig
	HTTP HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DBConfig configuración de acceso a datos. UseSupabase es el discriminante:
// true → backend gestionado (PostgREST sobre Supabase), false → PostgreSQL directo.
// Cada rama tiene sus propios campos obligatorios; ver Validate.
type DBConfig struct {
	UseSupabase bool

	// Backend gestionado (Supabase).
	SupabaseURL string // ej. https://xyz.supabase.co
	SupabaseKey string // service role key o anon key

	// Backend PostgreSQL directo.
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int // tope explícito del pool; nunca se depende del default de la librería
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RestURL devuelve el endpoint PostgREST del proyecto Supabase.
func (c DBConfig) RestURL() string {
	return strings.TrimRight(c.SupabaseURL, "/") + "/rest/v1"
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: USE_SUPABASE, PG_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en la raíz; se ignora si no existe.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "conta-hencker"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			UseSupabase: getBool(v, "USE_SUPABASE", false),
			SupabaseURL: getString(v, "SUPABASE_URL", ""),
			SupabaseKey: firstNonEmpty(
				getString(v, "SUPABASE_KEY", ""),
				getString(v, "SUPABASE_SERVICE_ROLE_KEY", ""),
			),
			Host:     getString(v, "PG_HOST", ""),
			Port:     getInt(v, "PG_PORT", 5432),
			User:     getString(v, "PG_USER", ""),
			Password: getString(v, "PG_PASSWORD", ""),
			DBName:   getString(v, "PG_DATABASE", ""),
			SSLMode:  getString(v, "PG_SSLMODE", "disable"),
			MaxConns: getInt(v, "DB_MAX_CONNS", 25),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "conta-hencker"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "PORT", 3000),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate aplica la regla de arranque estricto: el backend activo debe tener
// su configuración completa. Un backend a medio configurar jamás degrada en
// silencio al otro; el proceso debe morir aquí.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if c.DB.UseSupabase {
		if c.DB.SupabaseURL == "" || c.DB.SupabaseKey == "" {
			return fmt.Errorf("config: SUPABASE_URL y SUPABASE_KEY son obligatorios cuando USE_SUPABASE=true")
		}
		return nil
	}
	var faltan []string
	if c.DB.Host == "" {
		faltan = append(faltan, "PG_HOST")
	}
	if c.DB.User == "" {
		faltan = append(faltan, "PG_USER")
	}
	if c.DB.Password == "" {
		faltan = append(faltan, "PG_PASSWORD")
	}
	if c.DB.DBName == "" {
		faltan = append(faltan, "PG_DATABASE")
	}
	if len(faltan) > 0 {
		return fmt.Errorf("config: variables PostgreSQL obligatorias ausentes con USE_SUPABASE=false: %s",
			strings.Join(faltan, ", "))
	}
	if c.DB.MaxConns <= 0 {
		return fmt.Errorf("config: DB_MAX_CONNS debe ser mayor que cero")
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, s := range vals {
		if s != "" {
			return s
		}
	}
	return ""
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch val := v.Get(key).(type) {
		case string:
			return strings.EqualFold(val, "true")
		default:
			_ = val
			return v.GetBool(key)
		}
	}
	return def
}

package types

// Config contains the application configuration loaded from the yaml config
// file. The DSN can be overridden by the --dsn flag.
type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	Auth     AuthConfig     `json:"auth" yaml:"auth"`
	Admin    AdminConfig    `json:"admin" yaml:"admin"`
}

// DatabaseConfig selects the database driver and connection string.
type DatabaseConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	DSN    string `json:"dsn" yaml:"dsn"`
}

// AuthConfig configures token signing. TokenTTL is a Go duration string such
// as "24h".
type AuthConfig struct {
	JWTSecret string `json:"jwt_secret" yaml:"jwt_secret"`
	TokenTTL  string `json:"token_ttl" yaml:"token_ttl"`
}

// AdminConfig is the default admin account seeded on first start.
type AdminConfig struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

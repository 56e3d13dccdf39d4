package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file path, ":memory:" allowed
}

type Redis struct {
	Addr string
	Pass string
	DB   int
}

type S3 struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, set for R2/minio style providers
	AccessKey string
	SecretKey string
	PublicURL string // base URL objects are served from
}

type Storage struct {
	Backend  string // "s3" or "local"
	LocalDir string
	LocalURL string
	S3       S3
}

type Backup struct {
	KeyPrefix string
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Admin struct {
	Username string
	Password string
}

type Config struct {
	HTTP    HTTP
	DB      DB
	Redis   Redis
	Storage Storage
	Backup  Backup
	JWT     JWT
	Admin   Admin
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 9500)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "gritline")
	v.SetDefault("db.path", "gritline.db")
	v.SetDefault("storage.backend", "local")
	v.SetDefault("storage.local_dir", "blobs")
	v.SetDefault("storage.local_url", "http://127.0.0.1:9500/blobs")
	v.SetDefault("storage.s3.region", "auto")
	v.SetDefault("backup.key_prefix", "backups")
	v.SetDefault("jwt.issuer", "gritline")
	v.SetDefault("jwt.exp_min", 60)
	v.SetDefault("admin.username", "admin")

	// Secrets can come from the environment (GRITLINE_JWT_SECRET etc.)
	v.SetEnvPrefix("gritline")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		Redis: Redis{
			Addr: v.GetString("redis.addr"),
			Pass: v.GetString("redis.pass"),
			DB:   v.GetInt("redis.db"),
		},
		Storage: Storage{
			Backend:  v.GetString("storage.backend"),
			LocalDir: v.GetString("storage.local_dir"),
			LocalURL: v.GetString("storage.local_url"),
			S3: S3{
				Bucket:    v.GetString("storage.s3.bucket"),
				Region:    v.GetString("storage.s3.region"),
				Endpoint:  v.GetString("storage.s3.endpoint"),
				AccessKey: v.GetString("storage.s3.access_key"),
				SecretKey: v.GetString("storage.s3.secret_key"),
				PublicURL: v.GetString("storage.s3.public_url"),
			},
		},
		Backup: Backup{KeyPrefix: v.GetString("backup.key_prefix")},
		Admin:  Admin{Username: v.GetString("admin.username"), Password: v.GetString("admin.password")},
	}
	cfg.JWT.Secret = v.GetString("jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.JWT.ExpMin = v.GetInt("jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg, nil
}

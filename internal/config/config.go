package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Client    ClientConfig
	Nominatim NominatimConfig
	Photon    PhotonConfig
	Overpass  OverpassConfig
	Search    SearchConfig
	Cache     CacheConfig
	Redis     RedisConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// ClientConfig - идентификация клиента для OSM сервисов (usage policy Nominatim/Overpass)
type ClientConfig struct {
	UserAgent    string
	ContactEmail string
}

// Headers возвращает заголовки, которые отправляются с каждым исходящим запросом
func (c ClientConfig) Headers() map[string]string {
	headers := map[string]string{"User-Agent": c.UserAgent}
	if c.ContactEmail != "" {
		headers["From"] = c.ContactEmail
	}
	return headers
}

type NominatimConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	// RequestsPerSecond ограничивает частоту запросов, 0 отключает лимит
	RequestsPerSecond float64
}

type PhotonConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type OverpassConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	// QueryTimeout - значение [timeout:N] в тексте Overpass QL
	QueryTimeout time.Duration
}

type SearchConfig struct {
	Amenity       string
	DefaultRadius int
	DefaultLimit  int
}

type CacheConfig struct {
	Backend  string
	FilePath string
	BoltPath string
	RedisKey string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

const (
	CacheBackendFile   = "file"
	CacheBackendBolt   = "bolt"
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
)

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// .env необязателен, достаточно переменных окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Client: ClientConfig{
			UserAgent:    v.GetString("LOCATOR_USER_AGENT"),
			ContactEmail: v.GetString("LOCATOR_CONTACT_EMAIL"),
		},
		Nominatim: NominatimConfig{
			BaseURL:           v.GetString("NOMINATIM_URL"),
			RequestTimeout:    time.Duration(v.GetInt("NOMINATIM_TIMEOUT")) * time.Second,
			RequestsPerSecond: v.GetFloat64("NOMINATIM_RPS"),
		},
		Photon: PhotonConfig{
			BaseURL:        v.GetString("PHOTON_URL"),
			RequestTimeout: time.Duration(v.GetInt("PHOTON_TIMEOUT")) * time.Second,
		},
		Overpass: OverpassConfig{
			BaseURL:        v.GetString("OVERPASS_URL"),
			RequestTimeout: time.Duration(v.GetInt("OVERPASS_TIMEOUT")) * time.Second,
			QueryTimeout:   time.Duration(v.GetInt("OVERPASS_QUERY_TIMEOUT")) * time.Second,
		},
		Search: SearchConfig{
			Amenity:       v.GetString("SEARCH_AMENITY"),
			DefaultRadius: v.GetInt("SEARCH_DEFAULT_RADIUS"),
			DefaultLimit:  v.GetInt("SEARCH_DEFAULT_LIMIT"),
		},
		Cache: CacheConfig{
			Backend:  v.GetString("CACHE_BACKEND"),
			FilePath: v.GetString("LOCATOR_CACHE_PATH"),
			BoltPath: v.GetString("CACHE_BOLT_PATH"),
			RedisKey: v.GetString("CACHE_REDIS_KEY"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 9002
	}
	if cfg.Client.UserAgent == "" {
		cfg.Client.UserAgent = "PharmacyLocator/1.0 (youremail@example.com)"
	}
	if cfg.Client.ContactEmail == "" {
		cfg.Client.ContactEmail = "youremail@example.com"
	}
	if cfg.Nominatim.BaseURL == "" {
		cfg.Nominatim.BaseURL = "https://nominatim.openstreetmap.org/search"
	}
	if cfg.Nominatim.RequestTimeout == 0 {
		cfg.Nominatim.RequestTimeout = 10 * time.Second
	}
	if !v.IsSet("NOMINATIM_RPS") {
		cfg.Nominatim.RequestsPerSecond = 1
	}
	if cfg.Photon.BaseURL == "" {
		cfg.Photon.BaseURL = "https://photon.komoot.io/api/"
	}
	if cfg.Photon.RequestTimeout == 0 {
		cfg.Photon.RequestTimeout = 8 * time.Second
	}
	if cfg.Overpass.BaseURL == "" {
		cfg.Overpass.BaseURL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.RequestTimeout == 0 {
		cfg.Overpass.RequestTimeout = 30 * time.Second
	}
	if cfg.Overpass.QueryTimeout == 0 {
		cfg.Overpass.QueryTimeout = 25 * time.Second
	}
	if cfg.Search.Amenity == "" {
		cfg.Search.Amenity = "pharmacy"
	}
	if cfg.Search.DefaultRadius == 0 {
		cfg.Search.DefaultRadius = 20000
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 5
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = CacheBackendFile
	}
	if cfg.Cache.FilePath == "" {
		cfg.Cache.FilePath = "locator_cache.json"
	}
	if cfg.Cache.BoltPath == "" {
		cfg.Cache.BoltPath = "locator_cache.db"
	}
	if cfg.Cache.RedisKey == "" {
		cfg.Cache.RedisKey = "locator:geocode_cache"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Metadata  Metadata  `json:"metadata" yaml:"metadata" mapstructure:"metadata"`
	Index     Index     `json:"index" yaml:"index" mapstructure:"index"`
	Library   Library   `json:"library" yaml:"library" mapstructure:"library"`
	Storage   Storage   `json:"storage" yaml:"storage" mapstructure:"storage"`
	Downloads Downloads `json:"downloads" yaml:"downloads" mapstructure:"downloads"`
	Catalog   Catalog   `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Server    Server    `json:"server" yaml:"server" mapstructure:"server"`
}

// Metadata points at an IMDb-compatible metadata API.
type Metadata struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

// Index points at an apibay-compatible torrent index.
type Index struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	CacheTTL    time.Duration `json:"cacheTTL" yaml:"cacheTTL" mapstructure:"cacheTTL"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

// Library locates the Kodi video database the owned state is read from. An
// empty path disables the library and everything desired is fetched.
type Library struct {
	KodiDB string `json:"kodiDB" yaml:"kodiDB" mapstructure:"kodiDB"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Downloads configures the download client releases are handed to.
type Downloads struct {
	Implementation string `json:"implementation" yaml:"implementation" mapstructure:"implementation"`
	Scheme         string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host           string `json:"host" yaml:"host" mapstructure:"host"`
	Port           int    `json:"port" yaml:"port" mapstructure:"port"`
	Username       string `json:"username" yaml:"username" mapstructure:"username"`
	Password       string `json:"password" yaml:"password" mapstructure:"password"`
	SavePath       string `json:"savePath" yaml:"savePath" mapstructure:"savePath"`
}

// Catalog locates the file listing the desired media.
type Catalog struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

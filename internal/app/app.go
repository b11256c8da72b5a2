package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage selects where the catalog keeps ads. The local mode exists
// for installs without a Postgres instance.
const (
	StoragePostgres = "postgres"
	StorageLocal    = "local"
)

type Config struct {
	Storage         string        `yaml:"storage"`
	CfgDB           ConfigDB      `yaml:"db"`
	CfgES           ConfigES      `yaml:"es"`
	CfgKafka        ConfigKafka   `yaml:"kafka"`
	CfgS3           ConfigS3      `yaml:"s3"`
	RedisAddr       string        `yaml:"redis_addr"`
	ETLTimeout      time.Duration `yaml:"etl_search_timeout"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	Secret          string        `yaml:"secret"`
	ServerPort      string        `yaml:"srv_port"`
	SessionDuration time.Duration `yaml:"session_duration"`
}

type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

type ConfigES struct {
	Index string `yaml:"index"`
}

type ConfigKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type ConfigS3 struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PublicURL       string `yaml:"public_url"`
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

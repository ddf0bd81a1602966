package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vertex-lab/corpusrank/pkg/crawler"
	"github.com/vertex-lab/corpusrank/pkg/pagerank"
	"github.com/vertex-lab/corpusrank/pkg/report"
	"github.com/vertex-lab/corpusrank/pkg/utils/logger"
	"github.com/vertex-lab/corpusrank/pkg/utils/redisutils"
)

type SystemConfig struct {
	Log          *logger.Aggregate
	LogWriter    io.Writer
	RedisAddress string
	Format       string
	Seed         int64 // 0 means a random seed
	FromRedis    bool  // load the corpus from Redis when no directory is given
	Cache        bool  // save the crawled corpus to Redis
}

// The configuration parameters for the system and the estimators.
type Config struct {
	SystemConfig
	Crawl    crawler.CrawlConfig
	Estimate pagerank.EstimateConfig
}

func NewSystemConfig() SystemConfig {
	return SystemConfig{
		LogWriter:    os.Stderr,
		RedisAddress: redisutils.ProdAddress,
		Format:       report.FormatText,
	}
}

// NewConfig() returns a config with default parameters.
func NewConfig() *Config {
	config := &Config{
		SystemConfig: NewSystemConfig(),
		Crawl:        crawler.NewCrawlConfig(),
		Estimate:     pagerank.NewEstimateConfig(),
	}

	config.Log = logger.New(config.LogWriter)
	config.Crawl.Log = config.Log
	return config
}

func (c SystemConfig) Print() {
	fmt.Println("System:")
	fmt.Printf("  LogWriter: %T\n", c.LogWriter)
	fmt.Printf("  RedisAddress: %s\n", c.RedisAddress)
	fmt.Printf("  Format: %s\n", c.Format)
	fmt.Printf("  Seed: %d\n", c.Seed)
	fmt.Printf("  FromRedis: %t\n", c.FromRedis)
	fmt.Printf("  Cache: %t\n", c.Cache)
}

func (c *Config) Print() {
	c.SystemConfig.Print()
	c.Crawl.Print()
	c.Estimate.Print()
}

// LoadConfig() read the variables from the enviroment and parses them into a config struct.
func LoadConfig() (*Config, error) {
	var config = NewConfig()
	var err error

	for _, item := range os.Environ() {
		keyVal := strings.SplitN(item, "=", 2)
		if len(keyVal) != 2 {
			continue
		}
		key, val := keyVal[0], keyVal[1]

		switch key {
		case "LOGS":
			// LogWriter gets updated if a .log file is specified; otherwise it remains os.Stderr
			if strings.HasSuffix(val, ".log") {
				config.LogWriter, err = os.OpenFile(val, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
				if err != nil {
					return nil, fmt.Errorf("error opening file \"%v\": %v", val, err)
				}
			}

			config.Log = logger.New(config.LogWriter)
			config.Crawl.Log = config.Log

		case "DAMPING":
			config.Estimate.Damping, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "SAMPLES":
			config.Estimate.Samples, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "MAX_SWEEPS":
			config.Estimate.MaxSweeps, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "SEED":
			config.Seed, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "REDIS_ADDRESS":
			if val == "" {
				return nil, fmt.Errorf("redis address is empty")
			}
			config.RedisAddress = val

		case "FORMAT":
			if _, err := report.NewWriter(val, io.Discard); err != nil {
				return nil, err
			}
			config.Format = val

		case "EXTENSION":
			if !strings.HasPrefix(val, ".") {
				return nil, fmt.Errorf("extension \"%s\" must start with a dot", val)
			}
			config.Crawl.Extension = val
		}
	}

	return config, nil
}

// CloseLogs() closes the config.LogWriter if that is a file.
func (c *Config) CloseLogs() {
	if file, ok := c.LogWriter.(*os.File); ok && file != os.Stdout && file != os.Stderr {
		file.Close()
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vertex-lab/corpusrank/pkg/crawler"
	"github.com/vertex-lab/corpusrank/pkg/graph"
	"github.com/vertex-lab/corpusrank/pkg/pagerank"
	"github.com/vertex-lab/corpusrank/pkg/report"
	"github.com/vertex-lab/corpusrank/pkg/store/redistore"
	"github.com/vertex-lab/corpusrank/pkg/utils/redisutils"
)

// NewRootCmd() creates the pagerank command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagerank [corpus-dir]",
		Short: "Estimate the pagerank of the pages of an HTML corpus",
		Long: `pagerank reads every .html file of corpus-dir, builds the graph of the links
between them, and estimates the pagerank of each page twice: by sampling a
random surfer and by iterating the pagerank recurrence until it converges.

Defaults are read from the environment (and from a .env file, if present);
flags override them. The corpus can be cached in Redis with --cache and
reloaded later with --redis.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	defaults := pagerank.NewEstimateConfig()
	flags := cmd.Flags()
	flags.Float64("damping", defaults.Damping, "probability of following a link")
	flags.Int("samples", defaults.Samples, "number of pages visited by the random surfer")
	flags.Int64("seed", 0, "seed of the random surfer (0 means random)")
	flags.Int("max-sweeps", defaults.MaxSweeps, "maximum number of iteration sweeps (0 means no limit)")
	flags.String("format", report.FormatText, "output format: text or markdown")
	flags.Bool("redis", false, "load the corpus from Redis when no corpus-dir is given")
	flags.Bool("cache", false, "save the crawled corpus to Redis")
	flags.BoolP("verbose", "v", false, "print the configuration before running")
	return cmd
}

// Execute() runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// the .env file is optional
	_ = godotenv.Load()

	config, err := LoadConfig()
	if err != nil {
		return err
	}
	defer config.CloseLogs()

	if err := applyFlags(cmd, config); err != nil {
		return err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		config.Print()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	G, err := loadCorpus(ctx, config, args)
	if err != nil {
		return err
	}

	estimates, err := pagerank.Estimate(ctx, G, config.Estimate, newRand(config.Seed))
	if err != nil {
		return err
	}

	writer, err := report.NewWriter(config.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return writer.Write(&report.Results{
		Samples:  config.Estimate.Samples,
		Damping:  config.Estimate.Damping,
		Sampled:  estimates.Sampled,
		Iterated: estimates.Iterated,
	})
}

// applyFlags() overrides the config with the flags that have been set.
func applyFlags(cmd *cobra.Command, config *Config) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("damping") {
		if config.Estimate.Damping, err = flags.GetFloat64("damping"); err != nil {
			return err
		}
	}

	if flags.Changed("samples") {
		if config.Estimate.Samples, err = flags.GetInt("samples"); err != nil {
			return err
		}
	}

	if flags.Changed("seed") {
		if config.Seed, err = flags.GetInt64("seed"); err != nil {
			return err
		}
	}

	if flags.Changed("max-sweeps") {
		if config.Estimate.MaxSweeps, err = flags.GetInt("max-sweeps"); err != nil {
			return err
		}
	}

	if flags.Changed("format") {
		if config.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}

	if config.FromRedis, err = flags.GetBool("redis"); err != nil {
		return err
	}

	if config.Cache, err = flags.GetBool("cache"); err != nil {
		return err
	}

	return nil
}

/*
loadCorpus() returns the corpus to rank:

  - crawled from args[0], and saved to Redis if config.Cache;
  - loaded from Redis if no directory is given and config.FromRedis.
*/
func loadCorpus(ctx context.Context, config *Config, args []string) (*graph.Graph, error) {

	if len(args) == 0 {
		if !config.FromRedis {
			return nil, ErrMissingCorpus
		}

		store, closer, err := openStore(config.RedisAddress)
		if err != nil {
			return nil, err
		}
		defer closer()

		G, err := store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load the corpus from Redis: %w", err)
		}

		config.Log.Info("loaded %d pages from Redis at %s", G.Size(), config.RedisAddress)
		return G, nil
	}

	G, err := crawler.Crawl(ctx, args[0], config.Crawl)
	if err != nil {
		return nil, err
	}
	config.Log.Info("crawled %d pages from %s", G.Size(), args[0])

	if config.Cache {
		store, closer, err := openStore(config.RedisAddress)
		if err != nil {
			return nil, err
		}
		defer closer()

		if err := store.Save(ctx, G); err != nil {
			return nil, fmt.Errorf("failed to cache the corpus in Redis: %w", err)
		}
		config.Log.Info("cached %d pages in Redis at %s", G.Size(), config.RedisAddress)
	}

	return G, nil
}

// openStore() connects to Redis at address, and returns the store with a function to close it.
func openStore(address string) (*redistore.Store, func(), error) {
	cl := redisutils.SetupClient(address)
	store, err := redistore.NewStore(cl)
	if err != nil {
		cl.Close()
		return nil, nil, err
	}
	return store, func() { cl.Close() }, nil
}

// newRand() returns a random generator seeded with seed, or with the current time if seed is 0.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

//---------------------------------ERROR-CODES---------------------------------

var ErrMissingCorpus = errors.New("missing corpus: pass a corpus directory or use --redis")

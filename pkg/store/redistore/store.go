/*
The redistore package caches the link graph of a corpus in Redis, so that it
can be loaded again without crawling.

Only the input graph is stored. Pageranks computed from it are never persisted.
*/
package redistore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vertex-lab/corpusrank/pkg/graph"
	"github.com/vertex-lab/corpusrank/pkg/models"
	"github.com/vertex-lab/corpusrank/pkg/utils/redisutils"
	"github.com/vertex-lab/corpusrank/pkg/utils/sliceutils"
)

/*
Store keeps one corpus in Redis, using:

  - "pages", the set of all the pages
  - "links:<page>", the set of pages linked by <page> (missing for a sink)
*/
type Store struct {
	client *redis.Client
}

// NewStore() returns a Store using the provided Redis client.
func NewStore(cl *redis.Client) (*Store, error) {
	if cl == nil {
		return nil, ErrNilClientPointer
	}
	return &Store{client: cl}, nil
}

// Validate() returns the appropriate error if the store or its client are nil.
func (s *Store) Validate() error {
	if s == nil {
		return ErrNilStorePointer
	}

	if s.client == nil {
		return ErrNilClientPointer
	}

	return nil
}

// Save() replaces the corpus in Redis with G, atomically.
func (s *Store) Save(ctx context.Context, G models.Graph) error {

	if err := s.Validate(); err != nil {
		return err
	}

	if G == nil {
		return models.ErrNilGraph
	}

	if err := G.Validate(); err != nil {
		return err
	}

	oldPages, err := s.client.SMembers(ctx, redisutils.KeyPages).Result()
	if err != nil {
		return fmt.Errorf("failed to fetch the stored pages: %w", err)
	}

	pages := G.Pages()
	removed, _, _ := sliceutils.Partition(oldPages, pages)

	pipe := s.client.TxPipeline()
	for _, page := range removed {
		pipe.Del(ctx, redisutils.KeyLinks(page))
	}

	pipe.Del(ctx, redisutils.KeyPages)
	pipe.SAdd(ctx, redisutils.KeyPages, redisutils.FormatPages(pages)...)

	for _, page := range pages {
		pipe.Del(ctx, redisutils.KeyLinks(page))
		if links := G.Links(page); len(links) > 0 {
			pipe.SAdd(ctx, redisutils.KeyLinks(page), redisutils.FormatPages(links)...)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save the corpus: %w", err)
	}

	return nil
}

// Load() returns the corpus stored in Redis. It returns models.ErrEmptyGraph
// if there is none.
func (s *Store) Load(ctx context.Context) (*graph.Graph, error) {

	if err := s.Validate(); err != nil {
		return nil, err
	}

	pages, err := s.client.SMembers(ctx, redisutils.KeyPages).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the stored pages: %w", err)
	}

	if len(pages) == 0 {
		return nil, models.ErrEmptyGraph
	}

	pipe := s.client.Pipeline()
	cmds := make(map[string]*redis.StringSliceCmd, len(pages))
	for _, page := range pages {
		cmds[page] = pipe.SMembers(ctx, redisutils.KeyLinks(page))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to fetch the stored links: %w", err)
	}

	links := make(map[string][]string, len(pages))
	for page, cmd := range cmds {
		links[page] = cmd.Val()
	}

	return graph.FromMap(links)
}

// Clear() removes the stored corpus.
func (s *Store) Clear(ctx context.Context) error {

	if err := s.Validate(); err != nil {
		return err
	}

	pages, err := s.client.SMembers(ctx, redisutils.KeyPages).Result()
	if err != nil {
		return fmt.Errorf("failed to fetch the stored pages: %w", err)
	}

	keys := []string{redisutils.KeyPages}
	for _, page := range pages {
		keys = append(keys, redisutils.KeyLinks(page))
	}

	return s.client.Del(ctx, keys...).Err()
}

//---------------------------------ERROR-CODES---------------------------------

var ErrNilStorePointer = errors.New("nil store pointer")
var ErrNilClientPointer = errors.New("nil client pointer")

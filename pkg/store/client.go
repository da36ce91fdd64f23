package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dyluth/blockkit/pkg/blockkit"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// maxSaveAttempts bounds optimistic retries when concurrent saves race on one name.
const maxSaveAttempts = 5

// Client wraps a Redis client with namespace-aware template operations.
// All operations are scoped to a single namespace.
type Client struct {
	rdb       *redis.Client
	namespace string
}

// NewClient creates a new template store client for the given namespace.
// Returns an error if namespace is empty.
// Does not verify Redis connectivity - use Ping() for health checks.
func NewClient(redisOpts *redis.Options, namespace string) (*Client, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}

	return &Client{
		rdb:       redis.NewClient(redisOpts),
		namespace: namespace,
	}, nil
}

// Namespace returns the namespace this client is scoped to.
func (c *Client) Namespace() string {
	return c.namespace
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// SaveTemplate stores msg as the next version of the named template and publishes
// the saved template on the events channel.
// The version is allocated under WATCH so concurrent saves never share a number.
func (c *Client) SaveTemplate(ctx context.Context, name string, msg blockkit.Message) (*Template, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	versionsKey := TemplateVersionsKey(c.namespace, name)
	var saved *Template

	txf := func(tx *redis.Tx) error {
		latest, err := latestVersion(ctx, tx, versionsKey)
		if err != nil {
			return err
		}

		tmpl := &Template{
			ID:          uuid.New().String(),
			Name:        name,
			Version:     latest + 1,
			Payload:     msg,
			CreatedAtMs: time.Now().UnixMilli(),
		}
		if err := tmpl.Validate(); err != nil {
			return fmt.Errorf("template validation failed: %w", err)
		}

		hash, err := TemplateToHash(tmpl)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, TemplateKey(c.namespace, tmpl.ID), hash)
			pipe.ZAdd(ctx, versionsKey, redis.Z{Score: VersionScore(tmpl.Version), Member: tmpl.ID})
			pipe.SAdd(ctx, TemplateNamesKey(c.namespace), name)
			return nil
		})
		if err != nil {
			return err
		}

		saved = tmpl
		return nil
	}

	var err error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		err = c.rdb.Watch(ctx, txf, versionsKey)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save template %q: %w", name, err)
	}

	event, err := json.Marshal(saved)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template event: %w", err)
	}
	if err := c.rdb.Publish(ctx, TemplateEventsChannel(c.namespace), event).Err(); err != nil {
		return nil, fmt.Errorf("failed to publish template event: %w", err)
	}

	return saved, nil
}

// GetTemplate retrieves a template version by ID.
// Returns redis.Nil if the template doesn't exist (check with IsNotFound).
func (c *Client) GetTemplate(ctx context.Context, templateID string) (*Template, error) {
	key := TemplateKey(c.namespace, templateID)

	hashData, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read template from Redis: %w", err)
	}

	// HGetAll returns an empty map for missing keys
	if len(hashData) == 0 {
		return nil, redis.Nil
	}

	tmpl, err := HashToTemplate(hashData)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize template: %w", err)
	}

	return tmpl, nil
}

// TemplateExists checks if a template version exists without fetching it.
func (c *Client) TemplateExists(ctx context.Context, templateID string) (bool, error) {
	count, err := c.rdb.Exists(ctx, TemplateKey(c.namespace, templateID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check template existence: %w", err)
	}
	return count > 0, nil
}

// GetLatest retrieves the highest version of the named template.
// Returns redis.Nil if no version has been saved.
func (c *Client) GetLatest(ctx context.Context, name string) (*Template, error) {
	results, err := c.rdb.ZRevRangeWithScores(ctx, TemplateVersionsKey(c.namespace, name), 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get latest version: %w", err)
	}
	if len(results) == 0 {
		return nil, redis.Nil
	}

	templateID, ok := results[0].Member.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected member type in versions ZSET: %T", results[0].Member)
	}

	return c.GetTemplate(ctx, templateID)
}

// GetVersion retrieves a specific version of the named template.
// Returns redis.Nil if that version doesn't exist.
func (c *Client) GetVersion(ctx context.Context, name string, version int) (*Template, error) {
	score := strconv.Itoa(version)
	ids, err := c.rdb.ZRangeByScore(ctx, TemplateVersionsKey(c.namespace, name), &redis.ZRangeBy{
		Min: score,
		Max: score,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to look up version %d: %w", version, err)
	}
	if len(ids) == 0 {
		return nil, redis.Nil
	}

	return c.GetTemplate(ctx, ids[0])
}

// ScanTemplateIDs returns the IDs of every template version whose ID starts with prefix.
// Uses SCAN so large namespaces never block the server.
func (c *Client) ScanTemplateIDs(ctx context.Context, prefix string) ([]string, error) {
	keyPrefix := TemplateKey(c.namespace, "")
	iter := c.rdb.Scan(ctx, 0, keyPrefix+prefix+"*", 0).Iterator()

	var ids []string
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan templates: %w", err)
	}

	sort.Strings(ids)
	return ids, nil
}

// ListTemplates returns the latest version of every saved template, sorted by name.
func (c *Client) ListTemplates(ctx context.Context) ([]*Template, error) {
	names, err := c.rdb.SMembers(ctx, TemplateNamesKey(c.namespace)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list template names: %w", err)
	}
	sort.Strings(names)

	templates := make([]*Template, 0, len(names))
	for _, name := range names {
		tmpl, err := c.GetLatest(ctx, name)
		if IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load template %q: %w", name, err)
		}
		templates = append(templates, tmpl)
	}

	return templates, nil
}

type versionReader interface {
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd
}

// latestVersion returns the highest saved version for a versions key, or 0.
func latestVersion(ctx context.Context, rdb versionReader, versionsKey string) (int, error) {
	results, err := rdb.ZRevRangeWithScores(ctx, versionsKey, 0, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read version index: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return VersionFromScore(results[0].Score), nil
}

// Subscription represents an active Pub/Sub subscription to template events.
// Caller must call Close() when done to clean up resources.
type Subscription struct {
	events <-chan *Template
	errors <-chan error
	cancel func()
	once   sync.Once
}

// Events returns the channel of saved templates.
// The channel will be closed when the subscription is closed or the context is cancelled.
func (s *Subscription) Events() <-chan *Template {
	return s.events
}

// Errors returns the channel of subscription errors.
// The subscription continues after errors - malformed messages are skipped.
func (s *Subscription) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription. Safe to call multiple times.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// SubscribeTemplateEvents subscribes to template save events for this namespace.
// The subscription is confirmed by Redis before this returns.
func (c *Client) SubscribeTemplateEvents(ctx context.Context) (*Subscription, error) {
	pubsub := c.rdb.Subscribe(ctx, TemplateEventsChannel(c.namespace))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to template events: %w", err)
	}

	eventsChan := make(chan *Template, 10)
	errorsChan := make(chan error, 10)

	subCtx, cancelFunc := context.WithCancel(ctx)

	go func() {
		defer close(eventsChan)
		defer close(errorsChan)
		defer pubsub.Close()

		ch := pubsub.Channel()

		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var tmpl Template
				if err := json.Unmarshal([]byte(msg.Payload), &tmpl); err != nil {
					select {
					case errorsChan <- fmt.Errorf("failed to unmarshal template event: %w", err):
					case <-subCtx.Done():
						return
					}
					continue
				}

				select {
				case eventsChan <- &tmpl:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{
		events: eventsChan,
		errors: errorsChan,
		cancel: cancelFunc,
	}, nil
}

// IsNotFound returns true if the error is a Redis "key not found" error (redis.Nil).
// Use this to check whether GetTemplate, GetLatest or GetVersion found nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}

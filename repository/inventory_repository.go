package repository

import (
	"context"
	"log"

	"drop-service/models"

	"github.com/redis/go-redis/v9"
)

// InventoryRepository is the durable key/value store that tracks which items
// have sold and which payment sessions have already been fulfilled. Reads may
// be stale; writes are durable once acknowledged. There is no compare-and-set
// on the sold flag itself; the webhook handler is the only writer.
type InventoryRepository interface {
	// Status returns the sale status for an item. Absent keys mean available.
	Status(ctx context.Context, itemID string) (string, error)

	// MarkSold records an item as sold. The transition is terminal; writing
	// sold over sold is a no-op in effect.
	MarkSold(ctx context.Context, itemID string) error

	// MarkSessionProcessed stamps a payment session as fulfilled. It returns
	// false when the session was already stamped, so a redelivered webhook
	// never submits a second fulfillment order.
	MarkSessionProcessed(ctx context.Context, sessionID string) (bool, error)

	// RecordProviderOrder stores the provider order id created for a session,
	// for audit and manual retry tooling.
	RecordProviderOrder(ctx context.Context, sessionID, providerOrderID string) error

	// Statuses returns the sale status for each of the given items.
	Statuses(ctx context.Context, itemIDs []string) (map[string]string, error)
}

// NewRedisClient initializes and returns a Redis client.
func NewRedisClient(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Invalid Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	log.Println("Connected to Redis")
	return client
}

type redisInventoryRepo struct {
	client *redis.Client
}

// NewRedisInventoryRepository creates a Redis-backed InventoryRepository.
func NewRedisInventoryRepository(client *redis.Client) InventoryRepository {
	return &redisInventoryRepo{client: client}
}

func soldKey(itemID string) string {
	return "item:sold:" + itemID
}

func sessionKey(sessionID string) string {
	return "session:processed:" + sessionID
}

func orderKey(sessionID string) string {
	return "session:order:" + sessionID
}

func (r *redisInventoryRepo) Status(ctx context.Context, itemID string) (string, error) {
	val, err := r.client.Get(ctx, soldKey(itemID)).Result()
	if err == redis.Nil {
		return models.StatusAvailable, nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redisInventoryRepo) MarkSold(ctx context.Context, itemID string) error {
	// No TTL: sold is forever.
	return r.client.Set(ctx, soldKey(itemID), models.StatusSold, 0).Err()
}

func (r *redisInventoryRepo) MarkSessionProcessed(ctx context.Context, sessionID string) (bool, error) {
	return r.client.SetNX(ctx, sessionKey(sessionID), "1", 0).Result()
}

func (r *redisInventoryRepo) RecordProviderOrder(ctx context.Context, sessionID, providerOrderID string) error {
	return r.client.Set(ctx, orderKey(sessionID), providerOrderID, 0).Err()
}

func (r *redisInventoryRepo) Statuses(ctx context.Context, itemIDs []string) (map[string]string, error) {
	statuses := make(map[string]string, len(itemIDs))
	if len(itemIDs) == 0 {
		return statuses, nil
	}

	keys := make([]string, len(itemIDs))
	for i, id := range itemIDs {
		keys[i] = soldKey(id)
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, id := range itemIDs {
		status := models.StatusAvailable
		if s, ok := vals[i].(string); ok && s != "" {
			status = s
		}
		statuses[id] = status
	}
	return statuses, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// SnapshotRedis keeps snapshots as plain string keys "<prefix>:snapshot:<owner>".
// Keys carry no TTL; a snapshot lives until overwritten.
type SnapshotRedis struct {
	client *redis.Client
	prefix string
}

func NewSnapshotRedis(client *redis.Client, prefix string) *SnapshotRedis {
	if prefix == "" {
		prefix = "parking"
	}
	return &SnapshotRedis{client: client, prefix: prefix}
}

var _ SnapshotRepo = (*SnapshotRedis)(nil)

const redisScanCount = 100

func (r *SnapshotRedis) key(ownerID int) string {
	return fmt.Sprintf("%s:snapshot:%d", r.prefix, ownerID)
}

// ownerFromKey is the inverse of key; ok is false for foreign keys.
func (r *SnapshotRedis) ownerFromKey(k string) (int, bool) {
	rest, found := strings.CutPrefix(k, r.prefix+":snapshot:")
	if !found {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (r *SnapshotRedis) Save(ctx context.Context, ownerID int, body []byte) error {
	if err := r.client.Set(ctx, r.key(ownerID), body, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot for owner %d: %w", ownerID, err)
	}
	return nil
}

func (r *SnapshotRedis) Load(ctx context.Context, ownerID int) ([]byte, error) {
	body, err := r.client.Get(ctx, r.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot for owner %d: %w", ownerID, err)
	}
	return body, nil
}

func (r *SnapshotRedis) Owners(ctx context.Context) ([]int, error) {
	var out []int
	iter := r.client.Scan(ctx, 0, r.prefix+":snapshot:*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		if id, ok := r.ownerFromKey(iter.Val()); ok {
			out = append(out, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan snapshot owners: %w", err)
	}
	return out, nil
}

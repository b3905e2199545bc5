// Package cache stores serialized payoff plans keyed by a hash of their inputs.
package cache

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// PlanCache is the storage used by the payoff service. A miss is (nil, false, nil).
type PlanCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Key hashes parts into a cache key under prefix. Parts are length-prefixed
// so ("ab","c") and ("a","bc") never collide.
func Key(prefix string, parts ...string) string {
	digest := xxhash.New()
	for _, part := range parts {
		_, _ = digest.WriteString(strconv.Itoa(len(part)))
		_, _ = digest.WriteString(":")
		_, _ = digest.WriteString(part)
	}
	return prefix + ":" + strconv.FormatUint(digest.Sum64(), 16)
}

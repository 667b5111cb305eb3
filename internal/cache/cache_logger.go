package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeDelete deletes cache keys, logging instead of failing the request when
// the cache is unhealthy.
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if helper == nil {
		return
	}
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateUserScores drops the cached readiness aggregates for one user.
// Called whenever a record is inserted for that user.
func InvalidateUserScores(ctx context.Context, helper *CacheHelper, userID uint) {
	SafeDelete(ctx, helper, fmt.Sprintf("user:%d", userID))
}

// InvalidateAllScores drops every cached aggregate, used after a full store
// reset.
func InvalidateAllScores(ctx context.Context, helper *CacheHelper) {
	if helper == nil {
		return
	}
	if err := helper.InvalidatePattern(ctx, "user:*"); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate score cache", "error", err)
	}
}

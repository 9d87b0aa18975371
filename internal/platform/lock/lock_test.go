package lock_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"botanist/internal/platform/lock"
	apperrors "botanist/internal/platform/errors"
)

func TestWithinRunsCallbackAndReleases(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".botanist.lock")
	mgr := lock.NewFileManager(path)
	calls := 0
	for i := 0; i < 2; i++ {
		if err := mgr.Within(context.Background(), func(context.Context) error {
			calls++
			return nil
		}); err != nil {
			t.Fatalf("within #%d: %v", i, err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestWithinRejectsNestedHolder(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".botanist.lock")
	outer := lock.NewFileManager(path)
	inner := lock.NewFileManager(path)
	err := outer.Within(context.Background(), func(ctx context.Context) error {
		return inner.Within(ctx, func(context.Context) error {
			t.Fatalf("inner callback must not run while outer holds the lock")
			return nil
		})
	})
	if !errors.Is(err, apperrors.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestWithinPropagatesCallbackError(t *testing.T) {
	t.Parallel()
	mgr := lock.NewFileManager(filepath.Join(t.TempDir(), "nested", ".botanist.lock"))
	boom := errors.New("boom")
	if err := mgr.Within(context.Background(), func(context.Context) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
}

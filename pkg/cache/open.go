package cache

import (
	"context"
	"fmt"
	"strings"
)

// Open returns the cache described by url:
//
//   - "" opens a [FileCache] in dir ([DefaultDir] when dir is empty)
//   - "redis://..." or "rediss://..." opens a [RedisCache]
//   - "file://path" opens a [FileCache] at path
func Open(ctx context.Context, url, dir string) (Cache, error) {
	switch {
	case url == "":
		if dir == "" {
			d, err := DefaultDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return NewFileCache(dir)
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return NewRedisCache(ctx, url)
	case strings.HasPrefix(url, "file://"):
		return NewFileCache(strings.TrimPrefix(url, "file://"))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, url)
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SingularityNET-Archive/meetgraph/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the fetch cache",
		Long: `Manage the cache of remote inputs.

The cache is off unless --cache, --cache-url, MEETGRAPH_CACHE_URL or the
config file enables it. These commands act on the configured location: the
file cache directory by default, or Redis when a redis:// URL is set.`,
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if isRedisURL(c.cfg.Cache.URL) {
				rc, err := cache.NewRedisCache(ctx, c.cfg.Cache.URL)
				if err != nil {
					return fmt.Errorf("open cache: %w", err)
				}
				defer rc.Close()
				n, err := rc.Clear(ctx)
				if err != nil {
					return fmt.Errorf("clear cache: %w", err)
				}
				printSuccess(c.out, "Cleared %d cached entries", n)
				return nil
			}

			dir, err := c.cacheDir()
			if err != nil {
				return err
			}
			if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
				printInfo(c.out, "Cache is empty")
				return nil
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			n, err := fc.Clear()
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess(c.out, "Cleared %d cached entries", n)
			printDetail(c.out, "Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isRedisURL(c.cfg.Cache.URL) {
				fmt.Fprintln(c.out, c.cfg.Cache.URL)
				return nil
			}
			dir, err := c.cacheDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, dir)
			return nil
		},
	}
}

// cacheDir returns the file cache directory: a file:// URL, the configured
// dir, or $XDG_CACHE_HOME/meetgraph.
func (c *CLI) cacheDir() (string, error) {
	if u := c.cfg.Cache.URL; strings.HasPrefix(u, "file://") {
		return strings.TrimPrefix(u, "file://"), nil
	}
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return "", fmt.Errorf("get cache dir: %w", err)
	}
	return dir, nil
}

func isRedisURL(u string) bool {
	return strings.HasPrefix(u, "redis://") || strings.HasPrefix(u, "rediss://")
}

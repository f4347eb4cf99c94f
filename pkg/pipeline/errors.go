package pipeline

import (
	"context"
	"errors"

	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
	"github.com/SingularityNET-Archive/meetgraph/pkg/fetch"
	"github.com/SingularityNET-Archive/meetgraph/pkg/integrations"
)

// classifyFetch attaches an error code to a fetch failure. Cancellation is
// returned unchanged so callers can detect it.
func classifyFetch(err error, input string) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, fetch.ErrNotFound):
		if fetch.KindOf(input) == fetch.KindFile {
			return mgerrors.Wrap(mgerrors.ErrCodeFileNotFound, err, "cannot read input")
		}
		return mgerrors.Wrap(mgerrors.ErrCodeNotFound, err, "input does not exist")
	case errors.Is(err, fetch.ErrInvalidSource):
		return mgerrors.Wrap(mgerrors.ErrCodeInvalidInput, err, "invalid input")
	case errors.Is(err, fetch.ErrHTTPStatus), errors.Is(err, integrations.ErrNetwork):
		return mgerrors.Wrap(mgerrors.ErrCodeNetwork, err, "failed to fetch %s", input)
	}
	return mgerrors.Wrap(mgerrors.ErrCodeInternal, err, "failed to load %s", input)
}

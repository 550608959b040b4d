package repository

import (
	"context"
	"errors"
)

// pageFetchFunc retrieves one page of a paged collection. It returns the
// page's items and the next page number, zero when the API signals no
// further page (no rel="next" link).
type pageFetchFunc[T any] func(ctx context.Context, page int) (items []T, nextPage int, err error)

// forEachPage walks a paged collection starting at page 1, invoking fn for
// every item in page order. It requests the next page only after the
// current one is fully consumed, and stops on an empty page, an absent
// next-page signal, a fetch error, or when fn returns an error.
// ErrStopIteration from fn ends the walk without error; no further requests
// are issued either way.
func forEachPage[T any](ctx context.Context, fetch pageFetchFunc[T], fn func(T) error) error {
	page := 1
	for {
		items, nextPage, err := fetch(ctx, page)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for _, item := range items {
			if err := fn(item); err != nil {
				if errors.Is(err, ErrStopIteration) {
					return nil
				}
				return err
			}
		}
		if nextPage == 0 {
			return nil
		}
		page = nextPage
	}
}

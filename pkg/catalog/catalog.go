package catalog

import (
	"context"
	"log/slog"

	"github.com/getmockd/magemock/pkg/logging"
	"github.com/getmockd/magemock/pkg/magento"
	"github.com/getmockd/magemock/pkg/store"
)

// DefaultStore is the store code addressing global values.
const DefaultStore = "all"

// Catalog serves catalog reads and writes from a Store.
type Catalog struct {
	store   *store.Store
	log     *slog.Logger
	version string
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the catalog's logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

// WithPlatformVersion sets the platform version the mock imitates. It only
// changes the response of AddAttributeOption.
func WithPlatformVersion(version string) Option {
	return func(c *Catalog) {
		c.version = version
	}
}

// New creates a Catalog backed by st.
func New(st *store.Store, opts ...Option) *Catalog {
	if st == nil {
		panic("catalog.New: store must not be nil")
	}
	c := &Catalog{store: st, log: logging.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Categories returns every category.
func (c *Catalog) Categories(_ context.Context) ([]magento.Record, error) {
	var out []magento.Record
	err := c.store.View(func(tx *store.Tx) error {
		for _, cat := range tx.Categories() {
			out = append(out, cat.Clone())
		}
		return nil
	})
	return out, err
}

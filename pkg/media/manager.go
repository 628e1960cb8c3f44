package media

import (
	"context"
	"encoding/base64"
	"log/slog"

	"github.com/getmockd/magemock/pkg/logging"
	"github.com/getmockd/magemock/pkg/magento"
	"github.com/getmockd/magemock/pkg/store"
)

// Manager adds and updates gallery entries of the products in a Store.
type Manager struct {
	store *store.Store
	log   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a Manager backed by st.
func New(st *store.Store, opts ...Option) *Manager {
	if st == nil {
		panic("media.New: store must not be nil")
	}
	m := &Manager{store: st, log: logging.Nop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add stores entry as a new gallery entry of the product and returns its id.
func (m *Manager) Add(ctx context.Context, sku string, entry magento.MediaEntry) (int, error) {
	var entryID int
	err := m.store.Update(func(tx *store.Tx) error {
		product, ok := tx.Product(sku)
		if !ok {
			return magento.ProductNotFound(sku)
		}
		e, err := prepare(tx, entry)
		if err != nil {
			return err
		}
		e.ID = product.NextMediaID()
		save(product, e)
		entryID = e.ID

		m.log.InfoContext(ctx, "media added", "sku", sku, "entry_id", entryID, "file", e.File, "types", e.Types)
		return nil
	})
	return entryID, err
}

// Update replaces the gallery entry entryID of the product with entry.
func (m *Manager) Update(ctx context.Context, sku string, entryID int, entry magento.MediaEntry) error {
	return m.store.Update(func(tx *store.Tx) error {
		product, ok := tx.Product(sku)
		if !ok {
			return magento.ProductNotFound(sku)
		}
		if _, ok := product.Media[entryID]; !ok {
			return magento.MediaNotFound(sku, entryID)
		}
		e, err := prepare(tx, entry)
		if err != nil {
			return err
		}
		e.ID = entryID
		save(product, e)

		m.log.InfoContext(ctx, "media updated", "sku", sku, "entry_id", entryID, "file", e.File, "types", e.Types)
		return nil
	})
}

// List returns copies of the product's gallery entries ordered by id.
func (m *Manager) List(_ context.Context, sku string) ([]*magento.MediaEntry, error) {
	var out []*magento.MediaEntry
	err := m.store.View(func(tx *store.Tx) error {
		product, ok := tx.Product(sku)
		if !ok {
			return magento.ProductNotFound(sku)
		}
		gallery := product.Gallery()
		out = make([]*magento.MediaEntry, len(gallery))
		for i, e := range gallery {
			out[i] = e.Clone()
		}
		return nil
	})
	return out, err
}

// prepare turns a client payload into an entry ready to be stored: the
// server-controlled fields are replaced and uploaded content is decoded.
func prepare(tx *store.Tx, in magento.MediaEntry) (*magento.MediaEntry, error) {
	e := in.Clone()
	e.ID = 0
	e.TestData = nil
	if e.Types == nil {
		e.Types = []string{}
	}

	if c := e.Content; c != nil {
		data, err := base64.StdEncoding.DecodeString(c.Base64EncodedData)
		if err != nil {
			return nil, &magento.ValidationError{
				Message: "The image content must be valid base64 encoded data.",
				Field:   "content",
			}
		}
		e.TestData = &magento.MediaUpload{Content: data, Type: c.Type, Name: c.Name}
		e.Content = nil
	}

	e.File = tx.NextMediaFile()
	return e, nil
}

// save stores e in the gallery and takes its role flags away from every
// other entry.
func save(product *magento.Product, e *magento.MediaEntry) {
	if product.Media == nil {
		product.Media = make(map[int]*magento.MediaEntry)
	}
	for id, other := range product.Media {
		if id != e.ID {
			other.DropRoles(e.Types)
		}
	}
	product.Media[e.ID] = e
}

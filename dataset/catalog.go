package dataset

import (
	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstreplay/core"
)

// Provider yields graphs by name.
type Provider interface {
	// Names lists every dataset in presentation order.
	Names() []string
	// Graph builds the named graph.
	Graph(name string) (*core.Graph, error)
}

// Factory builds one graph on demand.
type Factory func() (*core.Graph, error)

// Entry describes a registered dataset.
type Entry struct {
	Name        string
	Description string
	// Start is the default start node; empty means the first node.
	Start string

	factory Factory
}

// Catalog is an ordered registry of datasets. It is not safe for concurrent
// registration; lookups after setup are read-only.
type Catalog struct {
	entries *orderedmap.OrderedMap[string, Entry]
	logger  *zap.Logger
}

var _ Provider = (*Catalog)(nil)

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger for registration and load events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCatalog returns an empty catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		entries: orderedmap.New[string, Entry](),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Register adds a dataset under name. Names must be non-empty and unique.
func (c *Catalog) Register(name, description, start string, f Factory) error {
	if name == "" || f == nil {
		return errors.Wrap(core.ErrInvalidInput, "register dataset: empty name or nil factory")
	}
	if _, ok := c.entries.Get(name); ok {
		return errors.Wrapf(ErrDuplicateDataset, "register %q", name)
	}
	c.entries.Set(name, Entry{Name: name, Description: description, Start: start, factory: f})
	c.logger.Debug("registered dataset", zap.String("dataset", name))

	return nil
}

// Len returns the number of datasets.
func (c *Catalog) Len() int { return c.entries.Len() }

// Names lists dataset names in registration order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Entries lists every entry in registration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}

// Entry returns the named entry.
func (c *Catalog) Entry(name string) (Entry, error) {
	e, ok := c.entries.Get(name)
	if !ok {
		return Entry{}, errors.Wrapf(ErrUnknownDataset, "dataset %q", name)
	}

	return e, nil
}

// Graph builds the named graph.
func (c *Catalog) Graph(name string) (*core.Graph, error) {
	e, err := c.Entry(name)
	if err != nil {
		return nil, err
	}
	g, err := e.factory()
	if err != nil {
		return nil, errors.Wrapf(err, "build dataset %q", name)
	}

	return g, nil
}

// StartOf resolves the start node of the named dataset: the registered
// start, else the first node. An empty graph yields "".
func (c *Catalog) StartOf(name string, g *core.Graph) (string, error) {
	e, err := c.Entry(name)
	if err != nil {
		return "", err
	}
	if e.Start != "" {
		return e.Start, nil
	}
	if ids := g.NodeIDs(); len(ids) > 0 {
		return ids[0], nil
	}

	return "", nil
}

package dataset

import "github.com/pkg/errors"

var (
	// ErrUnknownDataset indicates a lookup of a name that was never registered.
	ErrUnknownDataset = errors.New("dataset: unknown dataset")

	// ErrDuplicateDataset indicates a second registration under one name.
	ErrDuplicateDataset = errors.New("dataset: duplicate dataset")

	// ErrInvalidCatalog indicates a catalog file that fails to parse or
	// violates the catalog schema.
	ErrInvalidCatalog = errors.New("dataset: invalid catalog")
)

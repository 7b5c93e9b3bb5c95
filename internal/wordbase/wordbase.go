// Package wordbase stores the words the game picks from and validates guesses against.
//
// A WordBase is either a TextBase, backed by a newline-delimited file, or a
// TableBase, backed by a SQL table. Both honour the same contract:
//
//   - RandomPick returns a uniformly chosen eligible entry. Every entry is
//     eligible in a TextBase; only unused entries are eligible in a TableBase.
//   - Find is an exact match and ignores the used flag.
//   - Insert is idempotent and reports whether a new entry was written.
//   - MarkUsed flags an entry as used. A TableBase reports MarkStale when no
//     row matched; a TextBase keeps no usage state and reports MarkSkipped.
//
// An absent result is reported as ok == false with a nil error. Storage
// failures wrap ErrStorageUnavailable or ErrIO.
//
// A WordBase is not safe for concurrent use.
package wordbase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/fhcli/internal/model"
)

var (
	// ErrInvalidWord means an empty word was passed to Insert.
	ErrInvalidWord = errors.New("invalid word")
	// ErrStorageUnavailable means the backing file or database could not be opened.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrIO means a read or write against an open medium failed.
	ErrIO = errors.New("storage i/o failure")
)

// Backend names a WordBase variant.
type Backend int

const (
	BackendText Backend = iota
	BackendTable
)

func (b Backend) String() string {
	switch b {
	case BackendText:
		return "text"
	case BackendTable:
		return "table"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// MarkOutcome is the result of MarkUsed.
type MarkOutcome int

const (
	// MarkApplied means the entry is now flagged as used.
	MarkApplied MarkOutcome = iota
	// MarkStale means no stored entry has the given identity.
	MarkStale
	// MarkSkipped means the backend does not track usage.
	MarkSkipped
)

func (o MarkOutcome) String() string {
	switch o {
	case MarkApplied:
		return "applied"
	case MarkStale:
		return "stale"
	case MarkSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// WordBase is the storage contract shared by TextBase and TableBase.
type WordBase interface {
	RandomPick(ctx context.Context) (model.WordEntry, bool, error)
	Find(ctx context.Context, text string) (model.WordEntry, bool, error)
	Insert(ctx context.Context, text string) (bool, error)
	MarkUsed(ctx context.Context, entry model.WordEntry) (MarkOutcome, error)
	Stats(ctx context.Context) (model.Summary, error)
	Close() error

	// kind seals the interface to TextBase and TableBase.
	kind() Backend
}

// Kind reports which variant wb is.
func Kind(wb WordBase) Backend {
	return wb.kind()
}

// Open returns the backend selected by cfg: a TableBase when a database URL is
// set, otherwise a TextBase over the word file.
func Open(ctx context.Context, cfg model.StorageConfig) (WordBase, error) {
	log := zerolog.Ctx(ctx)
	if cfg.UsesTable() {
		tb, err := OpenTable(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("backend", BackendTable.String()).Str("dialect", tb.dialect.name).Msg("word base opened")
		return tb, nil
	}
	if cfg.WordFile == "" {
		return nil, fmt.Errorf("%w: no word file or database url configured", ErrStorageUnavailable)
	}
	log.Debug().Str("backend", BackendText.String()).Str("path", cfg.WordFile).Msg("word base opened")
	return NewText(cfg.WordFile), nil
}

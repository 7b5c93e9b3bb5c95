// Package importer turns raw word lists into word base entries.
//
// An import runs in two stages. Polish lowercases and normalizes every
// source line, keeps words of the configured length (by default only those
// made of letters a-z), drops duplicates and writes the survivors to a fresh
// staging file. Load streams the staging file into a word base and counts
// new entries.
package importer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/fhcli/internal/lang"
	"github.com/verte-zerg/fhcli/internal/wordbase"
	"github.com/verte-zerg/fhcli/internal/wordlist"
)

// DefaultWordLength is the puzzle length used when none is configured.
const DefaultWordLength = 5

// Dedup selects how Polish drops duplicate words.
type Dedup int

const (
	// DedupAdjacent drops a word equal to the previously kept one. Only
	// sorted sources are fully deduplicated; this matches lists imported by
	// earlier releases.
	DedupAdjacent Dedup = iota
	// DedupSet drops every word already kept during the run.
	DedupSet
)

func (d Dedup) String() string {
	switch d {
	case DedupAdjacent:
		return "adjacent"
	case DedupSet:
		return "set"
	default:
		return fmt.Sprintf("dedup(%d)", int(d))
	}
}

// ParseDedup parses "adjacent" or "set".
func ParseDedup(value string) (Dedup, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "adjacent":
		return DedupAdjacent, nil
	case "set":
		return DedupSet, nil
	default:
		return DedupAdjacent, fmt.Errorf("unknown dedup mode %q (want adjacent or set)", value)
	}
}

// Options configures an import.
type Options struct {
	Locale     lang.Locale
	WordLength int
	Dedup      Dedup
	// KeepNonLetters keeps words containing characters other than a-z, such
	// as apostrophes or hyphens, as long as they have the right length.
	KeepNonLetters bool
	// StagingDir holds the staging file; os.TempDir() when empty.
	StagingDir string
}

func (o Options) wordLength() int {
	if o.WordLength <= 0 {
		return DefaultWordLength
	}
	return o.WordLength
}

func (o Options) filter() wordlist.FilterFunc {
	length := wordlist.Length(o.wordLength())
	if o.KeepNonLetters {
		return length
	}
	return wordlist.All(wordlist.LettersOnly, length)
}

// Staged describes the output of Polish.
type Staged struct {
	Path string
	Read int
	Kept int
}

// Result describes a full import.
type Result struct {
	StagingPath string
	Read        int
	Staged      int
	Inserted    int
}

// Run polishes sourcePath and loads the staging file into wb.
func Run(ctx context.Context, wb wordbase.WordBase, sourcePath string, opts Options) (Result, error) {
	staged, err := Polish(ctx, sourcePath, opts)
	result := Result{StagingPath: staged.Path, Read: staged.Read, Staged: staged.Kept}
	if err != nil {
		return result, err
	}
	inserted, err := Load(ctx, wb, staged.Path)
	result.Inserted = inserted
	if err != nil {
		return result, err
	}
	return result, nil
}

// Polish writes the normalized, filtered and deduplicated words of
// sourcePath to a new staging file. On error the staging file is left in
// place and Staged.Path names it when it was created.
func Polish(ctx context.Context, sourcePath string, opts Options) (Staged, error) {
	dir := opts.StagingDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, uuid.NewString()+".txt")
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return Staged{}, fmt.Errorf("polish: create staging file: %w", err)
	}
	staged := Staged{Path: path}

	source, err := wordlist.Open(sourcePath)
	if err != nil {
		_ = out.Close()
		return staged, fmt.Errorf("polish: open source: %w", err)
	}
	defer func() {
		if cerr := source.Close(); cerr != nil {
			// Best-effort close for read-only source.
			_ = cerr
		}
	}()

	keep := opts.filter()
	seen := newDeduper(opts.Dedup)
	writer := bufio.NewWriter(out)
	for source.Next() {
		if err := ctx.Err(); err != nil {
			_ = out.Close()
			return staged, fmt.Errorf("polish: %w", err)
		}
		staged.Read++
		word := lang.Normalize(strings.ToLower(source.Line()), opts.Locale)
		if !keep(word) || seen.duplicate(word) {
			continue
		}
		if _, err := writer.WriteString(word + "\n"); err != nil {
			_ = out.Close()
			return staged, fmt.Errorf("polish: write staging file: %w", err)
		}
		staged.Kept++
	}
	if err := source.Err(); err != nil {
		_ = out.Close()
		return staged, fmt.Errorf("polish: read source: %w", err)
	}
	if err := writer.Flush(); err != nil {
		_ = out.Close()
		return staged, fmt.Errorf("polish: flush staging file: %w", err)
	}
	if err := out.Close(); err != nil {
		return staged, fmt.Errorf("polish: close staging file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("source", sourcePath).
		Str("staging", path).
		Int("read", staged.Read).
		Int("kept", staged.Kept).
		Str("dedup", opts.Dedup.String()).
		Msg("polish finished")
	return staged, nil
}

// Load inserts every line of the staging file into wb and returns the number
// of new entries. It stops at the first error.
func Load(ctx context.Context, wb wordbase.WordBase, stagingPath string) (int, error) {
	reader, err := wordlist.Open(stagingPath)
	if err != nil {
		return 0, fmt.Errorf("insert: open staging file: %w", err)
	}
	defer func() {
		if cerr := reader.Close(); cerr != nil {
			// Best-effort close for read-only staging file.
			_ = cerr
		}
	}()

	log := zerolog.Ctx(ctx)
	inserted, skipped := 0, 0
	for reader.Next() {
		if err := ctx.Err(); err != nil {
			return inserted, fmt.Errorf("insert: %w", err)
		}
		word := reader.Line()
		ok, err := wb.Insert(ctx, word)
		if err != nil {
			return inserted, fmt.Errorf("insert: %w", err)
		}
		if !ok {
			skipped++
			log.Trace().Str("word", word).Msg("already stored")
			continue
		}
		inserted++
	}
	if err := reader.Err(); err != nil {
		return inserted, fmt.Errorf("insert: read staging file: %w", err)
	}
	log.Debug().Int("inserted", inserted).Int("skipped", skipped).Msg("insert finished")
	return inserted, nil
}

type deduper struct {
	mode     Dedup
	previous string
	seen     map[string]struct{}
}

func newDeduper(mode Dedup) *deduper {
	d := &deduper{mode: mode}
	if mode == DedupSet {
		d.seen = map[string]struct{}{}
	}
	return d
}

// duplicate reports whether word was already kept and records it otherwise.
func (d *deduper) duplicate(word string) bool {
	if d.mode == DedupSet {
		if _, ok := d.seen[word]; ok {
			return true
		}
		d.seen[word] = struct{}{}
		return false
	}
	if word == d.previous {
		return true
	}
	d.previous = word
	return false
}

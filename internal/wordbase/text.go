package wordbase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/fhcli/internal/model"
	"github.com/verte-zerg/fhcli/internal/sampler"
	"github.com/verte-zerg/fhcli/internal/wordlist"
)

// TextBase is a WordBase over a newline-delimited file, one word per line.
// Every operation opens the file and closes it before returning. Reading a
// missing file fails with ErrStorageUnavailable; Insert creates it.
type TextBase struct {
	path string
	rnd  *rand.Rand
}

// NewText returns a TextBase over the file at path. The file is not touched
// until the first operation.
func NewText(path string) *TextBase {
	return &TextBase{
		path: path,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Path returns the word file path.
func (t *TextBase) Path() string {
	return t.path
}

func (t *TextBase) kind() Backend {
	return BackendText
}

// RandomPick chooses a line uniformly in a single reservoir-sampling pass.
func (t *TextBase) RandomPick(ctx context.Context) (model.WordEntry, bool, error) {
	res := sampler.NewWithRand[string](t.rnd)
	if err := t.scan(func(line string) bool {
		res.Offer(line)
		return true
	}); err != nil {
		return model.WordEntry{}, false, err
	}
	word, ok := res.Pick()
	if !ok {
		return model.WordEntry{}, false, nil
	}
	zerolog.Ctx(ctx).Trace().Int("lines", res.Seen()).Msg("reservoir pick")
	return model.WordEntry{Text: word}, true, nil
}

// Find streams the file until a line equals text.
func (t *TextBase) Find(_ context.Context, text string) (model.WordEntry, bool, error) {
	text = canonical(text)
	if text == "" {
		return model.WordEntry{}, false, nil
	}
	found := false
	if err := t.scan(func(line string) bool {
		if line == text {
			found = true
			return false
		}
		return true
	}); err != nil {
		return model.WordEntry{}, false, err
	}
	if !found {
		return model.WordEntry{}, false, nil
	}
	return model.WordEntry{Text: text}, true, nil
}

// Insert appends text unless Find already matches it. A missing file and its
// directory are created.
func (t *TextBase) Insert(ctx context.Context, text string) (bool, error) {
	text = canonical(text)
	if text == "" {
		return false, ErrInvalidWord
	}
	_, found, err := t.Find(ctx, text)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if found {
		return false, nil
	}

	if dir := filepath.Dir(t.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("%w: create %s: %w", ErrStorageUnavailable, dir, err)
		}
	}
	file, err := os.OpenFile(t.path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return false, fmt.Errorf("%w: open %s: %w", ErrStorageUnavailable, t.path, err)
	}

	record := text + "\n"
	needsBreak, err := missingTrailingNewline(file)
	if err != nil {
		_ = file.Close()
		return false, fmt.Errorf("%w: read %s: %w", ErrIO, t.path, err)
	}
	if needsBreak {
		record = "\n" + record
	}
	if _, err := file.WriteString(record); err != nil {
		_ = file.Close()
		return false, fmt.Errorf("%w: append to %s: %w", ErrIO, t.path, err)
	}
	if err := file.Close(); err != nil {
		return false, fmt.Errorf("%w: close %s: %w", ErrIO, t.path, err)
	}
	return true, nil
}

// MarkUsed is a no-op; a TextBase keeps no usage state.
func (t *TextBase) MarkUsed(_ context.Context, _ model.WordEntry) (MarkOutcome, error) {
	return MarkSkipped, nil
}

// Stats counts the lines of the file. Used is always 0.
func (t *TextBase) Stats(_ context.Context) (model.Summary, error) {
	var summary model.Summary
	if err := t.scan(func(string) bool {
		summary.Total++
		return true
	}); err != nil {
		return model.Summary{}, err
	}
	return summary, nil
}

// Close is a no-op.
func (t *TextBase) Close() error {
	return nil
}

// scan calls fn for each word line until fn returns false.
func (t *TextBase) scan(fn func(line string) bool) error {
	reader, err := wordlist.Open(t.path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrStorageUnavailable, t.path, err)
	}
	defer func() {
		if cerr := reader.Close(); cerr != nil {
			// Best-effort close for read-only scan.
			_ = cerr
		}
	}()
	for reader.Next() {
		if !fn(reader.Line()) {
			return nil
		}
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrIO, t.path, err)
	}
	return nil
}

func missingTrailingNewline(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return last[0] != '\n', nil
}

func canonical(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

package wordbase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver.
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver.

	"github.com/verte-zerg/fhcli/internal/model"
)

const wordsTable = "words"

type dialect struct {
	name        string
	driver      string
	placeholder sq.PlaceholderFormat
	createTable string
}

var (
	postgresDialect = dialect{
		name:        "postgres",
		driver:      "pgx",
		placeholder: sq.Dollar,
		createTable: `CREATE TABLE IF NOT EXISTS words (
			id SERIAL PRIMARY KEY,
			word TEXT NOT NULL,
			used BOOLEAN NOT NULL DEFAULT FALSE
		)`,
	}
	sqliteDialect = dialect{
		name:        "sqlite",
		driver:      "sqlite",
		placeholder: sq.Question,
		createTable: `CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY,
			word TEXT NOT NULL,
			used BOOLEAN NOT NULL DEFAULT FALSE
		)`,
	}
)

const createWordIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_words_word ON words(word)`

// TableBase is a WordBase over a SQL table words(id, word, used). It holds a
// single connection for its lifetime.
type TableBase struct {
	db      *sql.DB
	dialect dialect
	builder sq.StatementBuilderType
}

// OpenTable connects to the database at url and makes sure the words table
// exists. Postgres URLs (postgres://, postgresql://) use pgx; anything else
// is a SQLite path, optionally prefixed with sqlite://.
func OpenTable(ctx context.Context, url string) (*TableBase, error) {
	d, dsn, err := resolveDialect(url)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s database: %w", ErrStorageUnavailable, d.name, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: connect to %s database: %w", ErrStorageUnavailable, d.name, err)
	}
	tb := &TableBase{
		db:      db,
		dialect: d,
		builder: sq.StatementBuilder.PlaceholderFormat(d.placeholder),
	}
	if err := tb.migrate(ctx); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return tb, nil
}

func resolveDialect(url string) (dialect, string, error) {
	switch {
	case url == "":
		return dialect{}, "", fmt.Errorf("%w: database url is empty", ErrStorageUnavailable)
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgresDialect, url, nil
	}
	path := strings.TrimPrefix(url, "sqlite://")
	if !strings.HasPrefix(path, "file:") && path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return dialect{}, "", fmt.Errorf("%w: create %s: %w", ErrStorageUnavailable, dir, err)
			}
		}
	}
	return sqliteDialect, path, nil
}

func (t *TableBase) migrate(ctx context.Context) error {
	if _, err := t.db.ExecContext(ctx, t.dialect.createTable); err != nil {
		return fmt.Errorf("%w: create words table: %w", ErrStorageUnavailable, err)
	}
	// Tables filled before the index existed may hold duplicates; Insert
	// checks for an existing row itself, so the index is optional.
	if _, err := t.db.ExecContext(ctx, createWordIndex); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("unique word index not created")
	}
	return nil
}

func (t *TableBase) kind() Backend {
	return BackendTable
}

// Dialect returns "postgres" or "sqlite".
func (t *TableBase) Dialect() string {
	return t.dialect.name
}

// RandomPick returns a random unused entry.
func (t *TableBase) RandomPick(ctx context.Context) (model.WordEntry, bool, error) {
	query := t.builder.
		Select("id", "word", "used").
		From(wordsTable).
		Where(sq.Eq{"used": false}).
		OrderBy("random()").
		Limit(1)
	return t.queryEntry(ctx, query)
}

// Find returns the entry whose word equals text, used or not.
func (t *TableBase) Find(ctx context.Context, text string) (model.WordEntry, bool, error) {
	text = canonical(text)
	if text == "" {
		return model.WordEntry{}, false, nil
	}
	query := t.builder.
		Select("id", "word", "used").
		From(wordsTable).
		Where(sq.Eq{"word": text}).
		Limit(1)
	return t.queryEntry(ctx, query)
}

// Insert adds text unless a row with the same word exists.
func (t *TableBase) Insert(ctx context.Context, text string) (bool, error) {
	text = canonical(text)
	if text == "" {
		return false, ErrInvalidWord
	}
	missing := sq.Select().
		Column(sq.Expr("CAST(? AS TEXT)", text)).
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM words WHERE word = ?)", text))
	stmt := t.builder.
		Insert(wordsTable).
		Columns("word").
		Select(missing)
	affected, err := t.exec(ctx, stmt)
	if err != nil {
		return false, fmt.Errorf("insert %q: %w", text, err)
	}
	return affected > 0, nil
}

// MarkUsed sets used for the row with entry.ID. MarkStale means no row had
// that id.
func (t *TableBase) MarkUsed(ctx context.Context, entry model.WordEntry) (MarkOutcome, error) {
	stmt := t.builder.
		Update(wordsTable).
		Set("used", true).
		Where(sq.Eq{"id": entry.ID})
	affected, err := t.exec(ctx, stmt)
	if err != nil {
		return MarkStale, fmt.Errorf("mark %q used: %w", entry.Text, err)
	}
	if affected == 0 {
		zerolog.Ctx(ctx).Debug().Int64("id", entry.ID).Str("word", entry.Text).Msg("mark used matched no rows")
		return MarkStale, nil
	}
	return MarkApplied, nil
}

// Stats counts all and used rows.
func (t *TableBase) Stats(ctx context.Context) (model.Summary, error) {
	query, args, err := t.builder.
		Select("COUNT(*)", "COALESCE(SUM(CASE WHEN used THEN 1 ELSE 0 END), 0)").
		From(wordsTable).
		ToSql()
	if err != nil {
		return model.Summary{}, err
	}
	var total, used int64
	if err := t.db.QueryRowContext(ctx, query, args...).Scan(&total, &used); err != nil {
		return model.Summary{}, fmt.Errorf("%w: count words: %w", ErrIO, err)
	}
	return model.Summary{Total: int(total), Used: int(used)}, nil
}

// Close closes the database connection.
func (t *TableBase) Close() error {
	return t.db.Close()
}

func (t *TableBase) queryEntry(ctx context.Context, query sq.SelectBuilder) (model.WordEntry, bool, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.WordEntry{}, false, err
	}
	var entry model.WordEntry
	err = t.db.QueryRowContext(ctx, sqlStr, args...).Scan(&entry.ID, &entry.Text, &entry.Used)
	if errors.Is(err, sql.ErrNoRows) {
		return model.WordEntry{}, false, nil
	}
	if err != nil {
		return model.WordEntry{}, false, fmt.Errorf("%w: query words: %w", ErrIO, err)
	}
	return entry, true, nil
}

func (t *TableBase) exec(ctx context.Context, stmt sq.Sqlizer) (int64, error) {
	sqlStr, args, err := stmt.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := t.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: rows affected: %w", ErrIO, err)
	}
	return affected, nil
}

package vault

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/keeperdemo/internal/autotype"
	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"github.com/dmitrijs2005/keeperdemo/internal/cryptox"
	"github.com/dmitrijs2005/keeperdemo/internal/logging"
	"github.com/dmitrijs2005/keeperdemo/internal/models"
	"github.com/dmitrijs2005/keeperdemo/internal/repositories/entries"
	"github.com/google/uuid"
)

// ErrEmptyTitle is returned when an entry without a title is added.
var ErrEmptyTitle = errors.New("entry title must not be empty")

// Session is an unlocked vault. Close it exactly once.
type Session struct {
	db      *sql.DB
	key     []byte
	entries entries.Repository
	typer   autotype.Typer
	log     logging.Logger
	closed  bool
}

// Close wipes the master key and releases the database. A second call
// returns common.ErrorSessionClosed.
func (s *Session) Close() error {
	if s.closed {
		return common.ErrorSessionClosed
	}
	s.closed = true
	common.WipeByteArray(s.key)
	s.log.Debug(context.Background(), "vault closed")
	return s.db.Close()
}

func (s *Session) check() error {
	if s.closed {
		return common.ErrorSessionClosed
	}
	return nil
}

// EntryCount returns the number of live entries.
func (s *Session) EntryCount(ctx context.Context) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	return s.entries.Count(ctx)
}

type overviewRow struct {
	id string
	ov models.Overview
}

func (s *Session) overviews(ctx context.Context) ([]overviewRow, error) {
	all, err := s.entries.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]overviewRow, 0, len(all))
	for _, e := range all {
		var ov models.Overview
		if err := cryptox.Unseal(e.Overview, e.NonceOverview, s.key, &ov); err != nil {
			return nil, fmt.Errorf("entry %s overview: %w", e.Id, err)
		}
		rows = append(rows, overviewRow{id: e.Id, ov: ov})
	}
	return rows, nil
}

func (s *Session) load(ctx context.Context, id string) (models.Credential, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return models.Credential{}, err
	}
	var c models.Credential
	if err := cryptox.Unseal(e.Details, e.NonceDetails, s.key, &c); err != nil {
		return models.Credential{}, fmt.Errorf("entry %s details: %w", id, err)
	}
	c.ID = e.Id
	return c, nil
}

// Lookup returns the first entry whose title equals title exactly.
// A missing entry is reported with an error wrapping common.ErrorNotFound.
func (s *Session) Lookup(ctx context.Context, title string) (models.Credential, error) {
	if err := s.check(); err != nil {
		return models.Credential{}, err
	}
	rows, err := s.overviews(ctx)
	if err != nil {
		return models.Credential{}, err
	}
	for _, r := range rows {
		if r.ov.Title == title {
			return s.load(ctx, r.id)
		}
	}
	return models.Credential{}, fmt.Errorf("no entry titled %q: %w", title, common.ErrorNotFound)
}

// Search returns entries whose title, username or url contains query,
// case-insensitively, in storage order. maxResults <= 0 means no limit.
func (s *Session) Search(ctx context.Context, query string, maxResults int) ([]models.Credential, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	rows, err := s.overviews(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var out []models.Credential
	for _, r := range rows {
		if maxResults > 0 && len(out) >= maxResults {
			break
		}
		if !containsFold(r.ov, q) {
			continue
		}
		c, err := s.load(ctx, r.id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	s.log.Debug(ctx, "search done", "query", query, "matches", len(out))
	return out, nil
}

func containsFold(ov models.Overview, q string) bool {
	return strings.Contains(strings.ToLower(ov.Title), q) ||
		strings.Contains(strings.ToLower(ov.Username), q) ||
		strings.Contains(strings.ToLower(ov.URL), q)
}

// PlayAutotype looks up title and types its autotype sequence (or the
// default one) into the focused window.
func (s *Session) PlayAutotype(ctx context.Context, title string) error {
	c, err := s.Lookup(ctx, title)
	if err != nil {
		return err
	}
	if s.typer == nil {
		return autotype.ErrNoTyper
	}
	s.log.Debug(ctx, "playing autotype", "entry", c.ID)
	return autotype.Play(ctx, s.typer, c.AutotypeSequence, c)
}

// Add stores c as a new entry and returns its id.
func (s *Session) Add(ctx context.Context, c models.Credential) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return "", ErrEmptyTitle
	}
	if c.AutotypeSequence != "" {
		if _, err := autotype.Parse(c.AutotypeSequence); err != nil {
			return "", fmt.Errorf("autotype sequence: %w", err)
		}
	}
	c.ID = uuid.NewString()

	ov, ovNonce, err := cryptox.Seal(c.Overview(), s.key)
	if err != nil {
		return "", err
	}
	det, detNonce, err := cryptox.Seal(c, s.key)
	if err != nil {
		return "", err
	}

	err = s.entries.CreateOrUpdate(ctx, &models.Entry{
		Id:            c.ID,
		Overview:      ov,
		NonceOverview: ovNonce,
		Details:       det,
		NonceDetails:  detNonce,
	})
	if err != nil {
		return "", err
	}
	s.log.Debug(ctx, "entry added", "entry", c.ID)
	return c.ID, nil
}

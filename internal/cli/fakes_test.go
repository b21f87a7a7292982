package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"github.com/dmitrijs2005/keeperdemo/internal/models"
	"github.com/dmitrijs2005/keeperdemo/internal/vault"
)

type fakeSession struct {
	entries      []models.Credential
	searchResult []models.Credential
	count        int

	countErr  error
	searchErr error
	playErr   error

	closed   int
	searches []string
	limits   []int
	played   []string
	added    []models.Credential
}

func (s *fakeSession) EntryCount(ctx context.Context) (int, error) {
	return s.count, s.countErr
}

func (s *fakeSession) Lookup(ctx context.Context, title string) (models.Credential, error) {
	for _, e := range s.entries {
		if e.Title == title {
			return e, nil
		}
	}
	return models.Credential{}, fmt.Errorf("no entry titled %q: %w", title, common.ErrorNotFound)
}

func (s *fakeSession) Search(ctx context.Context, query string, maxResults int) ([]models.Credential, error) {
	s.searches = append(s.searches, query)
	s.limits = append(s.limits, maxResults)
	return s.searchResult, s.searchErr
}

func (s *fakeSession) PlayAutotype(ctx context.Context, title string) error {
	s.played = append(s.played, title)
	return s.playErr
}

func (s *fakeSession) Add(ctx context.Context, c models.Credential) (string, error) {
	s.added = append(s.added, c)
	return "id-1", nil
}

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type fakeVault struct {
	session *fakeSession
	openErr map[vault.InputMethod]error
	opened  []vault.InputMethod
	paths   []string

	created   map[string]string
	createErr error
}

func (v *fakeVault) Open(ctx context.Context, path string, method vault.InputMethod) (Session, error) {
	v.opened = append(v.opened, method)
	v.paths = append(v.paths, path)
	if err := v.openErr[method]; err != nil {
		return nil, err
	}
	if v.session == nil {
		v.session = &fakeSession{}
	}
	return v.session, nil
}

func (v *fakeVault) Create(ctx context.Context, path string, password []byte) error {
	if v.createErr != nil {
		return v.createErr
	}
	if v.created == nil {
		v.created = map[string]string{}
	}
	v.created[path] = string(password)
	return nil
}

type fakePrompter struct {
	answers []string
	err     error
	labels  []string
}

func (p *fakePrompter) PromptPassword(ctx context.Context, label string) ([]byte, error) {
	p.labels = append(p.labels, label)
	if p.err != nil {
		return nil, p.err
	}
	if len(p.answers) == 0 {
		return []byte{}, nil
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return []byte(a), nil
}

type testEnv struct {
	app     *App
	vault   *fakeVault
	console *fakePrompter
	gui     *fakePrompter
	out     *bytes.Buffer
	errw    *bytes.Buffer
}

func newTestEnv(t *testing.T, input string, s *fakeSession) *testEnv {
	t.Helper()
	stubSleep(t, nil)

	env := &testEnv{
		vault:   &fakeVault{session: s},
		console: &fakePrompter{},
		gui:     &fakePrompter{},
		out:     &bytes.Buffer{},
		errw:    &bytes.Buffer{},
	}
	env.app = newApp(strings.NewReader(input), env.out, env.errw)
	env.app.vault = env.vault
	env.app.prompters = Prompters{vault.InputConsole: env.console, vault.InputGUI: env.gui}
	return env
}

func (e *testEnv) run(args ...string) int {
	return e.app.execute(context.Background(), args)
}

// stubSleep replaces the countdown sleep. A nil ticks records nothing.
func stubSleep(t *testing.T, ticks *int) {
	t.Helper()
	old := sleep
	sleep = func(ctx context.Context, d time.Duration) error {
		if ticks != nil {
			*ticks++
		}
		return nil
	}
	t.Cleanup(func() { sleep = old })
}

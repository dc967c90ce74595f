package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"ghprofile/internal/fetch"
	"ghprofile/internal/github"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "http://api.test"

// mockAPI answers from a map keyed by locator; unknown locators fail like a 404.
type mockAPI struct {
	mu       sync.Mutex
	profiles map[string]*github.UserProfile
	calls    []string
}

func newMockAPI() *mockAPI {
	return &mockAPI{profiles: map[string]*github.UserProfile{
		testBase + "/users/pjr94": {Login: "pjr94", ID: 1, Location: "Somewhere", Followers: intPtr(12), Following: intPtr(3)},
	}}
}

func (m *mockAPI) FetchUser(ctx context.Context, locator string) (*github.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, locator)
	if p, ok := m.profiles[locator]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: status 404", github.ErrFetchFailed)
}

func (m *mockAPI) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func newTestSearchView(api *mockAPI) *SearchView {
	c := fetch.New(api, github.UserURL(testBase, github.DefaultUser))
	return NewSearchView(c, testBase)
}

// collect runs cmd and flattens batches into the messages they produce.
// Only use it on commands that return immediately (fetches, Tick, Blink).
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// fetchResults returns the fetch results among the messages cmd produces.
func fetchResults(cmd tea.Cmd) []fetch.ResultMsg {
	var out []fetch.ResultMsg
	for _, m := range collect(cmd) {
		if r, ok := m.(fetch.ResultMsg); ok {
			out = append(out, r)
		}
	}
	return out
}

// press sends a bound key and returns the command its message produces.
func press(t *testing.T, v *SearchView, k string) tea.Cmd {
	t.Helper()
	_, cmd := v.Update(keyMsg(k))
	require.NotNil(t, cmd, "key %q should be bound", k)
	_, next := v.Update(cmd())
	return next
}

func mount(t *testing.T, v *SearchView) {
	t.Helper()
	results := fetchResults(v.Init())
	require.Len(t, results, 1)
	v.Update(results[0])
}

func TestSearchView_InitialMountShowsDefaultUser(t *testing.T) {
	api := newMockAPI()
	v := newTestSearchView(api)

	cmd := v.Init()
	assert.True(t, v.State().Loading)
	assert.Contains(t, v.View(), loadingText)

	results := fetchResults(cmd)
	require.Len(t, results, 1)
	v.Update(results[0])

	assert.Equal(t, []string{testBase + "/users/pjr94"}, api.Calls())
	s := v.State()
	assert.False(t, s.Loading)
	assert.False(t, s.Failed)
	out := v.View()
	assert.Contains(t, out, "pjr94")
	assert.Contains(t, out, "Somewhere")
	assert.NotContains(t, out, loadingText)
	assert.NotContains(t, out, errorText)
}

func TestSearchView_SubmitRequestsExactLocator(t *testing.T) {
	api := newMockAPI()
	v := newTestSearchView(api)
	mount(t, v)

	v.SetQuery("some-user")
	results := fetchResults(press(t, v, "enter"))
	require.Len(t, results, 1)

	calls := api.Calls()
	assert.Equal(t, testBase+"/users/some-user", calls[len(calls)-1])
}

func TestSearchView_TypedQueryIsUsedVerbatim(t *testing.T) {
	api := newMockAPI()
	v := newTestSearchView(api)
	mount(t, v)

	v.Update(keyMsg("a b"))
	assert.Equal(t, "a b", v.Query())

	fetchResults(press(t, v, "enter"))
	calls := api.Calls()
	assert.Equal(t, testBase+"/users/a b", calls[len(calls)-1])
}

func TestSearchView_NotFoundShowsBannerAndKeepsCard(t *testing.T) {
	api := newMockAPI()
	v := newTestSearchView(api)
	mount(t, v)

	v.SetQuery("octocat")
	cmd := press(t, v, "enter")
	assert.Contains(t, v.View(), loadingText)

	for _, r := range fetchResults(cmd) {
		v.Update(r)
	}

	s := v.State()
	assert.True(t, s.Failed)
	assert.False(t, s.Loading)
	require.NotNil(t, s.Profile)
	assert.Equal(t, "pjr94", s.Profile.Login, "card data is not replaced by a failure")

	out := v.View()
	assert.Contains(t, out, errorText)
	assert.NotContains(t, out, loadingText)
	assert.NotContains(t, out, "Somewhere", "banner replaces the card while failed")
}

func TestSearchView_LastSubmitWins(t *testing.T) {
	api := newMockAPI()
	api.profiles[testBase+"/users/alice"] = &github.UserProfile{Login: "alice"}
	api.profiles[testBase+"/users/bob"] = &github.UserProfile{Login: "bob"}
	v := newTestSearchView(api)
	mount(t, v)

	v.SetQuery("alice")
	alice := press(t, v, "enter")
	v.SetQuery("bob")
	bob := press(t, v, "enter")

	// bob's response lands first, alice's late one must be ignored.
	for _, r := range fetchResults(bob) {
		v.Update(r)
	}
	for _, r := range fetchResults(alice) {
		v.Update(r)
	}

	assert.Equal(t, "bob", v.State().Profile.Login)
	assert.Contains(t, v.View(), "bob")
	assert.NotContains(t, v.View(), "alice")
}

func TestSearchView_ResubmitSameQueryIsNoop(t *testing.T) {
	api := newMockAPI()
	v := newTestSearchView(api)
	mount(t, v)

	v.SetQuery(github.DefaultUser)
	assert.Nil(t, press(t, v, "enter"))
	assert.Len(t, api.Calls(), 1)
}

func TestSearchView_RefreshRefetches(t *testing.T) {
	api := newMockAPI()
	v := newTestSearchView(api)
	mount(t, v)

	results := fetchResults(press(t, v, "ctrl+r"))
	require.Len(t, results, 1)
	v.Update(results[0])

	assert.Equal(t, []string{testBase + "/users/pjr94", testBase + "/users/pjr94"}, api.Calls())
	assert.False(t, v.State().Loading)
}

func TestSearchView_QuitClosesController(t *testing.T) {
	for _, k := range []string{"esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			api := newMockAPI()
			v := newTestSearchView(api)
			pending := fetchResults(v.Init())

			cmd := press(t, v, k)
			require.NotNil(t, cmd)
			_, isQuit := cmd().(tea.QuitMsg)
			assert.True(t, isQuit)

			// The in-flight initial fetch resolves after teardown and is ignored.
			for _, r := range pending {
				v.Update(r)
			}
			assert.Nil(t, v.State().Profile)
		})
	}
}

func TestSearchView_EmptyStateBeforeFirstFetch(t *testing.T) {
	v := newTestSearchView(newMockAPI())
	out := v.View()
	assert.Contains(t, out, emptyText)
	assert.NotContains(t, out, loadingText)
	assert.NotContains(t, out, errorText)
}

func TestSearchView_RenderStatesAreExclusive(t *testing.T) {
	api := newMockAPI()
	v := newTestSearchView(api)

	check := func(stage string) {
		out := v.View()
		n := 0
		for _, marker := range []string{errorText, loadingText, "ID:"} {
			if strings.Contains(out, marker) {
				n++
			}
		}
		assert.Equal(t, 1, n, "%s: expected exactly one result region in %q", stage, out)
	}

	cmd := v.Init()
	check("loading")
	for _, r := range fetchResults(cmd) {
		v.Update(r)
	}
	check("loaded")

	v.SetQuery("missing")
	for _, r := range fetchResults(press(t, v, "enter")) {
		v.Update(r)
	}
	check("failed")
}

func TestSearchView_FormAndHelpRendered(t *testing.T) {
	v := newTestSearchView(newMockAPI())
	out := v.View()
	assert.Contains(t, out, "Search User", "placeholder shown in empty input")
	assert.Contains(t, out, "[ Search ]")
	assert.Contains(t, out, "search")
	assert.Contains(t, out, "quit")
}

func TestSearchView_WindowResize(t *testing.T) {
	v := newTestSearchView(newMockAPI())
	v.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Equal(t, 24, v.input.Width)

	v.Update(tea.WindowSizeMsg{Width: 200, Height: 20})
	assert.Equal(t, 48, v.input.Width)
}

package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/models"
)

func fixture() []models.Document {
	return []models.Document{
		{
			ID:    1,
			Title: "Python Tips",
			Tags:  []string{"python", "programming"},
			Body:  "Intro line\nUse list comprehensions for clarity\nClosing line\n",
		},
		{
			ID:    2,
			Title: "Meeting Notes",
			Tags:  []string{"work"},
			Body:  "Discussed the roadmap\n",
		},
	}
}

func TestBodyMatchWithContext(t *testing.T) {
	matches, err := Run(fixture(), Options{Query: "comprehensions", Scope: ScopeBody})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, 1, m.Doc.ID)
	assert.Equal(t, MatchBody, m.Kind)
	assert.NotEmpty(t, m.Context)
	assert.LessOrEqual(t, len([]rune(m.Context)), 100)
	assert.Contains(t, m.Context, "comprehensions")
	// Neighbouring lines are pulled into the window.
	assert.Contains(t, m.Context, "Intro line")
	assert.Contains(t, m.Context, "Closing line")
}

func TestTitleMatchShortCircuitsBody(t *testing.T) {
	docs := []models.Document{{
		ID:    1,
		Title: "Go Notes",
		Body:  "go appears here too\n",
	}}
	matches, err := Run(docs, Options{Query: "go"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, MatchTitle, matches[0].Kind)
	assert.Equal(t, "Go Notes", matches[0].Context)
}

func TestScopeTitleOnlyIgnoresBody(t *testing.T) {
	matches, err := Run(fixture(), Options{Query: "comprehensions", Scope: ScopeTitle})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestScopeBodyOnlyIgnoresTitle(t *testing.T) {
	matches, err := Run(fixture(), Options{Query: "Python Tips", Scope: ScopeBody})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCaseSensitivity(t *testing.T) {
	matches, err := Run(fixture(), Options{Query: "python tips", CaseSensitive: true})
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = Run(fixture(), Options{Query: "python tips"})
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestTagFilterAppliedBeforeMatching(t *testing.T) {
	matches, err := Run(fixture(), Options{Query: "e", TagFilter: []string{"work"}})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Doc.ID)
}

func TestQueryIsLiteralNotRegex(t *testing.T) {
	docs := []models.Document{{
		ID:    1,
		Title: "Notes",
		Body:  "the expression a.*b is literal here\nplain ab text\n",
	}}
	matches, err := Run(docs, Options{Query: "a.*b", Scope: ScopeBody})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Contains(t, matches[0].Context, "a.*b")
}

func TestFirstBodyMatchOnly(t *testing.T) {
	docs := []models.Document{{
		ID:    1,
		Title: "Repeats",
		Body:  "hit one\nfiller\nfiller\nfiller\nhit two\n",
	}}
	matches, err := Run(docs, Options{Query: "hit", Scope: ScopeBody})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Contains(t, matches[0].Context, "hit one")
	assert.NotContains(t, matches[0].Context, "hit two")
}

func TestLongContextTruncated(t *testing.T) {
	long := strings.Repeat("wordy ", 40) + "needle " + strings.Repeat("more ", 40)
	docs := []models.Document{{ID: 1, Title: "Long", Body: long}}

	matches, err := Run(docs, Options{Query: "needle", Scope: ScopeBody})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	ctx := matches[0].Context
	assert.Equal(t, 100, len([]rune(ctx)))
	assert.True(t, strings.HasSuffix(ctx, "..."))
}

func TestEmptyQueryRejected(t *testing.T) {
	_, err := Run(fixture(), Options{Query: "   "})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestMatchAtBodyBoundary(t *testing.T) {
	docs := []models.Document{{ID: 1, Title: "Edge", Body: "only line"}}
	matches, err := Run(docs, Options{Query: "only", Scope: ScopeBody})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "only line", matches[0].Context)
}

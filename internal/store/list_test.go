package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/store"
	"github.com/halvard/ansuz/internal/testutil"
)

func TestListTagFilter(t *testing.T) {
	_, s := testutil.TestCorpus(t)
	testutil.MustCreate(t, s, "Python Tips", []string{"python", "programming"}, "")
	testutil.MustCreate(t, s, "Meeting Notes", []string{"work"}, "")

	docs, err := s.List(store.ListOptions{TagFilter: []string{"python"}})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Python Tips", docs[0].Title)
}

func TestListSortByTitle(t *testing.T) {
	_, s := testutil.TestCorpus(t)
	testutil.MustCreate(t, s, "banana", nil, "")
	testutil.MustCreate(t, s, "Apple", nil, "")
	testutil.MustCreate(t, s, "cherry", nil, "")

	docs, err := s.List(store.ListOptions{SortKey: store.SortByTitle})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "Apple", docs[0].Title)
	assert.Equal(t, "banana", docs[1].Title)
	assert.Equal(t, "cherry", docs[2].Title)

	reversed, err := s.List(store.ListOptions{SortKey: store.SortByTitle, Reverse: true})
	require.NoError(t, err)
	assert.Equal(t, "cherry", reversed[0].Title)
}

func TestListLimit(t *testing.T) {
	_, s := testutil.TestCorpus(t)
	testutil.MustCreate(t, s, "one", nil, "")
	testutil.MustCreate(t, s, "two", nil, "")
	testutil.MustCreate(t, s, "three", nil, "")

	docs, err := s.List(store.ListOptions{SortKey: store.SortByTitle, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestListSortBySize(t *testing.T) {
	_, s := testutil.TestCorpus(t)
	testutil.MustCreate(t, s, "big", nil, "a much longer body with plenty of text in it\n")
	testutil.MustCreate(t, s, "small", nil, "x\n")

	docs, err := s.List(store.ListOptions{SortKey: store.SortBySize})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "small", docs[0].Title)
	assert.Equal(t, "big", docs[1].Title)
}

func TestListUnknownSortKey(t *testing.T) {
	_, s := testutil.TestCorpus(t)
	_, err := s.List(store.ListOptions{SortKey: "relevance"})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

package memory

import (
	"testing"
	"time"

	"sentiment-dashboard/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	_, found := repo.Get("abc")
	assert.False(t, found)

	sess := store.Session{ID: "abc", SelectedColumn: "text", Text: "great product"}
	repo.Save(sess)

	sess.Text = "changed after save"
	got, found := repo.Get("abc")
	require.True(t, found)
	assert.Equal(t, "great product", got.Text)
	assert.Equal(t, "text", got.SelectedColumn)
	assert.Equal(t, 1, repo.Count())

	repo.Delete("abc")
	_, found = repo.Get("abc")
	assert.False(t, found)
}

func TestSessionRepositoryExpires(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	repo.Save(store.Session{ID: "short"})

	assert.Eventually(t, func() bool {
		_, found := repo.Get("short")
		return !found
	}, time.Second, 10*time.Millisecond)
}

package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

func TestStore_SetGet(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Set(".txt", "Notepad.Assoc", "Notepad"))

	e, ok := s.Get(".txt")
	require.True(t, ok)
	assert.Equal(t, assoc.Extension(".txt"), e.Ext)
	assert.Equal(t, assoc.HandlerID("Notepad.Assoc"), e.Handler)
	assert.Equal(t, "Notepad", e.Label)

	_, ok = s.Get(".pdf")
	assert.False(t, ok)
}

func TestStore_Set_NormalizesExtension(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Set(".TXT", "Notepad.Assoc", ""))

	_, ok := s.Get(".txt")
	assert.True(t, ok)

	// Lookups normalize too.
	_, ok = s.Get(".TxT")
	assert.True(t, ok)
}

func TestStore_Set_RejectsInvalid(t *testing.T) {
	s := NewStore()

	assert.Error(t, s.Set("not an ext!", "Some.Handler", ""))
	assert.Error(t, s.Set(".txt", "", ""), "zero handler must never be stored")
	assert.Error(t, s.Set(".txt", "   ", ""))
	assert.Equal(t, 0, s.Len())
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(".txt", "Notepad.Assoc", ""))

	assert.True(t, s.Remove(".txt"))
	assert.False(t, s.Remove(".txt"))
	assert.Equal(t, 0, s.Len())
}

func TestStore_Snapshot_InsertionOrder(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(".txt", "Notepad.Assoc", ""))
	require.NoError(t, s.Set(".pdf", "Acrobat.Document", ""))
	require.NoError(t, s.Set(".html", "ChromeHTML", ""))

	// Updating an existing entry keeps its position.
	require.NoError(t, s.Set(".pdf", "Edge.PDF", ""))

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, assoc.Extension(".txt"), snap[0].Ext)
	assert.Equal(t, assoc.Extension(".pdf"), snap[1].Ext)
	assert.Equal(t, assoc.HandlerID("Edge.PDF"), snap[1].Handler)
	assert.Equal(t, assoc.Extension(".html"), snap[2].Ext)
}

func TestStore_Snapshot_IsACopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(".txt", "Notepad.Assoc", ""))

	snap := s.Snapshot()
	snap[0].Handler = "Tampered"

	e, _ := s.Get(".txt")
	assert.Equal(t, assoc.HandlerID("Notepad.Assoc"), e.Handler)
}

func TestStore_Replace(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(".old", "Old.Handler", ""))

	s.Replace([]Entry{
		{Ext: ".TXT", Handler: "Notepad.Assoc", Label: "Notepad"},
		{Ext: "bad ext", Handler: "X"},
		{Ext: ".pdf", Handler: ""},
		{Ext: ".html", Handler: "ChromeHTML"},
	})

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, assoc.Extension(".txt"), snap[0].Ext)
	assert.Equal(t, assoc.Extension(".html"), snap[1].Ext)

	_, ok := s.Get(".old")
	assert.False(t, ok)
}

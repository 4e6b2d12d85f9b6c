package accounts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	items, err := NewFileRepository(t.TempDir()).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSaveThenLoad_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	r := NewFileRepository(dir)
	ctx := context.Background()

	in := []models.Account{
		{FirstName: "Ann", LastName: "Lee", Username: "ann", Password: "abc1234", IsAdmin: true},
		{FirstName: "Bob", LastName: "Ray", Username: "bob", Password: "xyz9876"},
	}
	require.NoError(t, r.Save(ctx, in))

	out, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_WritesUserJSONWithTwoSpaceIndent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewFileRepository(dir).Save(context.Background(), []models.Account{
		{FirstName: "Ann", LastName: "Lee", Username: "ann", Password: "abc1234"},
	}))

	data, err := os.ReadFile(filepath.Join(dir, "user.json"))
	require.NoError(t, err)
	assert.Equal(t, `[
  {
    "first_name": "Ann",
    "last_name": "Lee",
    "username": "ann",
    "password": "abc1234",
    "is_admin": false
  }
]`, string(data))
}

func TestLoad_MissingIsAdminDefaultsFalse(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(FilePath(dir), []byte(`[{"first_name":"A","last_name":"B","username":"ab","password":"abc1234"}]`), 0o600))

	items, err := NewFileRepository(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].IsAdmin)
}

func TestLoad_Corruption(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: `[{`},
		{name: "wrong type", content: `[{"username": 5}]`},
		{name: "blank username", content: `[{"username":""}]`},
		{name: "duplicate username", content: `[{"username":"a"},{"username":"a"}]`},
		{name: "two admins", content: `[{"username":"a","is_admin":true},{"username":"b","is_admin":true}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(FilePath(dir), []byte(tt.content), 0o600))

			_, err := NewFileRepository(dir).Load(context.Background())
			require.ErrorIs(t, err, common.ErrStorageCorruption)
		})
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileRepository(t.TempDir()).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

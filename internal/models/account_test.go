package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Set(t *testing.T) {
	a := Account{Username: "alice"}

	require.True(t, a.Set(FieldFirstName, "Alice"))
	require.True(t, a.Set(FieldLastName, "Smith"))
	require.True(t, a.Set(FieldUsername, "asmith"))
	require.True(t, a.Set(FieldPassword, "abc1234"))
	assert.False(t, a.Set("is_admin", "true"))
	assert.False(t, a.Set("email", "x"))

	assert.Equal(t, Account{FirstName: "Alice", LastName: "Smith", Username: "asmith", Password: "abc1234"}, a)
}

func TestAccount_String(t *testing.T) {
	assert.Equal(t, "bob", Account{Username: "bob"}.String())
	assert.Equal(t, "root (Admin)", Account{Username: "root", IsAdmin: true}.String())
}

func TestAccount_Validate(t *testing.T) {
	assert.NoError(t, Account{Username: "bob"}.Validate())
	assert.Error(t, Account{Username: " "}.Validate())
}

func TestAccount_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Account{FirstName: "A", LastName: "B", Username: "ab", Password: "abc1234", IsAdmin: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"first_name":"A","last_name":"B","username":"ab","password":"abc1234","is_admin":true}`, string(b))
}

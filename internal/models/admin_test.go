// internal/models/admin_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUserPassword(t *testing.T) {
	user := AdminUser{Username: "admin"}

	require.NoError(t, user.SetPassword("s3cret-pass"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("s3cret-pass"))
	assert.Error(t, user.CheckPassword("wrong"))
	assert.Error(t, user.CheckPassword(""))
}

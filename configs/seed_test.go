package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/abdul-09/slooze-restaurant/entity"
)

// connectMemoryDB points the package connection at a fresh in-memory
// database, pinned to one connection so the memory store survives.
func connectMemoryDB(t *testing.T) {
	t.Helper()
	ConnectionDB(&Config{DBSource: ":memory:"})
	sqlDB, err := DB().DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	SetupDatabase()
}

func TestSeedAdmin(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("ADMIN_PASSWORD", "s3cret-admin")

	connectMemoryDB(t)

	require.NoError(t, SeedAdmin())

	var admin entity.User
	require.NoError(t, DB().Where("email = ?", "root@example.com").First(&admin).Error)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, entity.RegionGlobal, admin.Region)
	assert.True(t, admin.IsActive)

	// The stored hash must verify against the seeded password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret-admin")))

	// Idempotent: a second run does not duplicate the account.
	require.NoError(t, SeedAdmin())
	var count int64
	require.NoError(t, DB().Model(&entity.User{}).Where("email = ?", "root@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedCategories(t *testing.T) {
	connectMemoryDB(t)

	require.NoError(t, SeedCategories())
	require.NoError(t, SeedCategories())

	var count int64
	require.NoError(t, DB().Model(&entity.Category{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/pkg/mailer"
	"github.com/abdul-09/slooze-restaurant/repository"
	"github.com/abdul-09/slooze-restaurant/utils"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	svc := NewAuthService(repo, mailer.LogSender{}, "test-secret", time.Hour, 30*time.Minute, "http://localhost:3000")
	return svc, repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("  New@Example.COM ", "hunter22", "New", "User", entity.RegionIndia)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, entity.RoleMember, user.Role)
	assert.Equal(t, entity.RegionIndia, user.Region)
	assert.NotEqual(t, "hunter22", user.Password)

	token, logged, err := svc.Login("new@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleMember, claims.Role)
	assert.Equal(t, entity.RegionIndia, claims.Region)
	assert.Empty(t, claims.Purpose)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("", "pw", "", "", entity.RegionIndia)
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))

	_, err = svc.Register("a@b.com", "pw", "", "", entity.RegionGlobal)
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument), "self service cannot claim the global region")

	_, err = svc.Register("dup@b.com", "pw", "", "", entity.RegionIndia)
	require.NoError(t, err)
	_, err = svc.Register("dup@b.com", "pw", "", "", entity.RegionIndia)
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))
}

func TestLoginRejections(t *testing.T) {
	svc, repo := newAuthService(t)

	user, err := svc.Register("u@b.com", "right-pw", "", "", entity.RegionAmerica)
	require.NoError(t, err)

	_, _, err = svc.Login("u@b.com", "wrong-pw")
	assert.True(t, apperr.IsKind(err, apperr.PermissionDenied))

	_, _, err = svc.Login("nobody@b.com", "right-pw")
	assert.True(t, apperr.IsKind(err, apperr.PermissionDenied))

	require.NoError(t, repo.Update(user.ID, map[string]any{"is_active": false}))
	_, _, err = svc.Login("u@b.com", "right-pw")
	assert.True(t, apperr.IsKind(err, apperr.PermissionDenied))
}

func TestPasswordResetRoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("r@b.com", "old-pw", "", "", entity.RegionIndia)
	require.NoError(t, err)

	// Unknown email is indistinguishable from success.
	require.NoError(t, svc.RequestPasswordReset("ghost@b.com"))

	token, err := utils.GenerateResetToken(user.ID, "test-secret", 30*time.Minute)
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmPasswordReset(token, "new-pw"))

	_, _, err = svc.Login("r@b.com", "old-pw")
	assert.True(t, apperr.IsKind(err, apperr.PermissionDenied))
	_, _, err = svc.Login("r@b.com", "new-pw")
	assert.NoError(t, err)
}

func TestPasswordResetRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("r@b.com", "old-pw", "", "", entity.RegionIndia)
	require.NoError(t, err)

	access, err := utils.GenerateToken(user.ID, user.Role, user.Region, "test-secret", time.Hour)
	require.NoError(t, err)

	err = svc.ConfirmPasswordReset(access, "new-pw")
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))

	err = svc.ConfirmPasswordReset("not-a-token", "new-pw")
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))

	err = svc.ConfirmPasswordReset(access, "")
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))
}

package service

import (
	"context"
	"testing"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) TestPromoteIsIdempotent() {
	require.NoError(s.T(), s.roleService.Promote(s.ctx, s.admin, s.customer))
	require.NoError(s.T(), s.roleService.Promote(s.ctx, s.admin, s.customer))

	count := s.countRows(&model.UserRole{}, "role = ?", model.RoleAdmin)
	require.EqualValues(s.T(), 2, count)

	ok, err := s.roleService.IsAdmin(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}

func (s *ServiceTestSuite) TestPromoteErrors() {
	err := s.roleService.Promote(s.ctx, s.customer, s.admin)
	requireCode(s.T(), err, int(er.UnauthorizedCode))

	err = s.roleService.Promote(s.ctx, uuid.Nil, s.customer)
	requireCode(s.T(), err, int(er.UnauthenticatedCode))

	err = s.roleService.Promote(s.ctx, s.admin, uuid.New())
	requireCode(s.T(), err, int(er.UserNotFoundCode))

	_, err = s.roleService.PromoteByEmail(s.ctx, s.admin, "nobody@gleam.test")
	requireCode(s.T(), err, int(er.UserNotFoundCode))

	ok, err := s.roleService.IsAdmin(s.ctx, uuid.Nil)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
}

func (s *ServiceTestSuite) TestPromoteByEmail() {
	id, err := s.roleService.PromoteByEmail(s.ctx, s.admin, " PRIYA@gleam.test ")
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.customer, id)

	ok, err := s.roleService.IsAdmin(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}

func (s *ServiceTestSuite) TestDemote() {
	err := s.roleService.Demote(s.ctx, s.admin, s.admin)
	requireCode(s.T(), err, int(er.InvalidOperationCode))

	err = s.roleService.Demote(s.ctx, s.customer, s.admin)
	requireCode(s.T(), err, int(er.UnauthorizedCode))

	// 對非管理者操作視為成功
	require.NoError(s.T(), s.roleService.Demote(s.ctx, s.admin, s.customer))

	require.NoError(s.T(), s.roleService.Promote(s.ctx, s.admin, s.customer))
	require.NoError(s.T(), s.roleService.Demote(s.ctx, s.customer, s.admin))

	ok, err := s.roleService.IsAdmin(s.ctx, s.admin)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)

	count := s.countRows(&model.UserRole{}, "role = ?", model.RoleAdmin)
	require.EqualValues(s.T(), 1, count)

	// 已被移除的管理者不能再操作
	err = s.roleService.Demote(s.ctx, s.admin, s.customer)
	requireCode(s.T(), err, int(er.UnauthorizedCode))
}

func (s *ServiceTestSuite) TestListUsers() {
	users, err := s.roleService.ListUsers(s.ctx, s.admin)
	require.NoError(s.T(), err)
	require.Len(s.T(), users, 2)

	byID := map[uuid.UUID]model.UserWithRoles{}
	for _, u := range users {
		byID[u.Profile.UserID] = u
	}
	require.True(s.T(), byID[s.admin].IsAdmin())
	require.False(s.T(), byID[s.customer].IsAdmin())
	require.NotNil(s.T(), byID[s.customer].Roles)

	_, err = s.roleService.ListUsers(s.ctx, s.customer)
	requireCode(s.T(), err, int(er.UnauthorizedCode))
}

func (s *ServiceTestSuite) TestBootstrapAdminOnlyOnce() {
	_, err := s.roleService.BootstrapAdmin(s.ctx, "second@gleam.test", "secret123", "Second")
	requireCode(s.T(), err, int(er.InvalidOperationCode))

	_, err = s.store.GetUserByEmail(s.ctx, "second@gleam.test")
	require.True(s.T(), db.IsNotFound(err))
}

func TestBootstrapAdminReusesExistingUser(t *testing.T) {
	ctx := context.Background()
	conn, err := db.GetSqliteConn(db.InMemorySqliteDSN(uuid.NewString()))
	require.NoError(t, err)
	store := db.NewStore(db.NewDbDao(conn))
	require.NoError(t, store.InitMigrate())
	defer store.Close()

	existing, err := createUserWithProfile(ctx, store, "owner@gleam.test", "secret123", "Owner")
	require.NoError(t, err)

	roles := NewRoleService(store)
	_, err = roles.BootstrapAdmin(ctx, "owner@gleam.test", "wrong-password", "")
	requireCode(t, err, int(er.UnauthenticatedCode))

	ok, err := roles.IsAdmin(ctx, existing.ID)
	require.NoError(t, err)
	require.False(t, ok)

	user, err := roles.BootstrapAdmin(ctx, "OWNER@gleam.test", "secret123", "")
	require.NoError(t, err)
	require.Equal(t, existing.ID, user.ID)

	ok, err = roles.IsAdmin(ctx, existing.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

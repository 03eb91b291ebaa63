package service

import (
	"context"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type IRoleService interface {
	// IsAdmin 是否持有 admin 角色
	// 錯誤:
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)

	// Promote 重複指派視為成功
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UnauthorizedCode 403: 非管理者
	//   - er.UserNotFoundCode 470: 用戶不存在
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	Promote(ctx context.Context, actor, userID uuid.UUID) error

	// PromoteByEmail 後台以 email 指派管理者
	// 錯誤: 同 Promote
	PromoteByEmail(ctx context.Context, actor uuid.UUID, email string) (uuid.UUID, error)

	// Demote 不能移除自己, 也不能移除最後一位管理者
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UnauthorizedCode 403: 非管理者
	//   - er.InvalidOperationCode: 移除自己或最後一位管理者
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	Demote(ctx context.Context, actor, userID uuid.UUID) error

	// ListUsers 後台使用者清單與角色
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UnauthorizedCode 403: 非管理者
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	ListUsers(ctx context.Context, actor uuid.UUID) ([]model.UserWithRoles, error)

	// BootstrapAdmin 系統沒有任何管理者時建立第一位
	// email 已註冊時需驗證密碼
	// 錯誤:
	//   - er.InvalidOperationCode: 已經存在管理者
	//   - er.UnauthenticatedCode 401: 既有帳號密碼錯誤
	//   - er.InvalidArgumentCode 460: email 或密碼格式錯誤
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	BootstrapAdmin(ctx context.Context, email, password, displayName string) (*model.User, error)
}

type RoleService struct {
	store db.IStore
}

var _ IRoleService = (*RoleService)(nil)

func NewRoleService(store db.IStore) IRoleService {
	if store == nil {
		panic("role service missing required dependency store")
	}
	return &RoleService{store: store}
}

func (s *RoleService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	ok, err := s.store.HasRole(ctx, userID, model.RoleAdmin)
	if err != nil {
		return false, er.New(er.InternalErrorCode, err.Error())
	}
	return ok, nil
}

func (s *RoleService) Promote(ctx context.Context, actor, userID uuid.UUID) error {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return err
	}

	if _, err := s.store.GetUserByID(ctx, userID); err != nil {
		if db.IsNotFound(err) {
			return er.New(er.UserNotFoundCode, "user not found")
		}
		return er.New(er.InternalErrorCode, err.Error())
	}

	return s.grant(ctx, actor, userID)
}

func (s *RoleService) PromoteByEmail(ctx context.Context, actor uuid.UUID, email string) (uuid.UUID, error) {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return uuid.Nil, err
	}

	user, err := s.store.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if db.IsNotFound(err) {
			return uuid.Nil, er.New(er.UserNotFoundCode, "user not found")
		}
		return uuid.Nil, er.New(er.InternalErrorCode, err.Error())
	}

	if err := s.grant(ctx, actor, user.ID); err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

func (s *RoleService) grant(ctx context.Context, actor, userID uuid.UUID) error {
	grantedBy := actor
	err := s.store.AssignRoleIfNotExists(ctx, &model.UserRole{
		UserID:    userID,
		Role:      model.RoleAdmin,
		GrantedBy: &grantedBy,
		CreatedAt: timeNow(),
	})
	if err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

// Demote 鎖住所有管理者列, 避免兩位管理者同時互相移除後沒有管理者
func (s *RoleService) Demote(ctx context.Context, actor, userID uuid.UUID) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if actor == userID {
		return er.New(er.InvalidOperationCode, "cannot remove your own admin role")
	}

	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		holders, err := tx.LockRoleHolders(ctx, model.RoleAdmin)
		if err != nil {
			return err
		}

		actorIsAdmin, targetIsAdmin := false, false
		for _, h := range holders {
			switch h.UserID {
			case actor:
				actorIsAdmin = true
			case userID:
				targetIsAdmin = true
			}
		}
		if !actorIsAdmin {
			return er.New(er.UnauthorizedCode, ErrMsgPermissionDenied)
		}
		if !targetIsAdmin {
			return nil
		}
		if len(holders) <= 1 {
			return er.New(er.InvalidOperationCode, "cannot remove the last admin")
		}

		_, err = tx.RemoveRole(ctx, userID, model.RoleAdmin)
		return err
	})
	return asAnaError(err)
}

func (s *RoleService) ListUsers(ctx context.Context, actor uuid.UUID) ([]model.UserWithRoles, error) {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return nil, err
	}

	profiles, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	ids := make([]uuid.UUID, len(profiles))
	for i := range profiles {
		ids[i] = profiles[i].UserID
	}
	roles, err := s.store.ListRolesByUserIDs(ctx, ids)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	roleMap := make(map[uuid.UUID][]model.RoleName, len(roles))
	for _, r := range roles {
		roleMap[r.UserID] = append(roleMap[r.UserID], r.Role)
	}

	users := make([]model.UserWithRoles, 0, len(profiles))
	for _, p := range profiles {
		userRoles := roleMap[p.UserID]
		if userRoles == nil {
			userRoles = []model.RoleName{}
		}
		users = append(users, model.UserWithRoles{Profile: p, Roles: userRoles})
	}
	return users, nil
}

func (s *RoleService) BootstrapAdmin(ctx context.Context, email, password, displayName string) (*model.User, error) {
	var user *model.User
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		holders, err := tx.LockRoleHolders(ctx, model.RoleAdmin)
		if err != nil {
			return err
		}
		if len(holders) > 0 {
			return er.New(er.InvalidOperationCode, "an admin already exists")
		}

		user, err = tx.GetUserByEmail(ctx, NormalizeEmail(email))
		switch {
		case err == nil:
			if !checkPassword(user, password) {
				return er.New(er.UnauthenticatedCode, "invalid email or password")
			}
		case db.IsNotFound(err):
			user, err = createUserWithProfile(ctx, tx, email, password, displayName)
			if err != nil {
				return err
			}
		default:
			return err
		}

		return tx.AssignRoleIfNotExists(ctx, &model.UserRole{
			UserID:    user.ID,
			Role:      model.RoleAdmin,
			CreatedAt: timeNow(),
		})
	})
	if err != nil {
		return nil, asAnaError(err)
	}

	log.Info().Str("email", user.Email).Str("user_id", user.ID.String()).Msg("bootstrap admin created")
	return user, nil
}

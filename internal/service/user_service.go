package service

import (
	"context"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/RoyceAzure/rj/api/token"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/constants"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignInResult 登入成功回傳
type SignInResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        model.User
}

// MeResult 目前登入者資訊
type MeResult struct {
	Profile model.Profile
	IsAdmin bool
}

type IUserService interface {
	// SignUp 建立帳號與個人資料
	// 錯誤:
	//   - er.InvalidArgumentCode 460: email 格式錯誤或密碼長度不足
	//   - er.InvalidOperationCode: email 已註冊
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	SignUp(ctx context.Context, email, password, displayName string) (*model.User, error)

	// SignIn 帳號密碼登入, 回傳 access token
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 帳號或密碼錯誤
	//   - er.InternalErrorCode 500: token 創建錯誤
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)

	// GetProfile 沒有個人資料時自動建立
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UserNotFoundCode 470: 用戶不存在
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)

	// UpdateProfile nil 欄位不更新
	// 錯誤: 同 GetProfile, 另外名稱為空回傳 er.BadRequestCode
	UpdateProfile(ctx context.Context, userID uuid.UUID, displayName, avatarURL *string) (*model.Profile, error)

	// Me 個人資料與是否為管理者
	// 錯誤: 同 GetProfile
	Me(ctx context.Context, userID uuid.UUID) (*MeResult, error)
}

type UserService struct {
	store      db.IStore
	tokenMaker token.Maker[uuid.UUID]
}

var _ IUserService = (*UserService)(nil)

func NewUserService(store db.IStore, tokenMaker token.Maker[uuid.UUID]) IUserService {
	if store == nil {
		panic("user service missing required dependency store")
	}
	if tokenMaker == nil || reflect.ValueOf(tokenMaker).IsNil() {
		panic("user service initialization failed: tokenMaker cannot be nil")
	}
	return &UserService{store: store, tokenMaker: tokenMaker}
}

// NormalizeEmail 去除空白並轉小寫
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail 不允許連續的點, 也不允許 local part 或網域以點開頭結尾
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return er.New(er.InvalidArgumentCode, "invalid email format")
	}
	if strings.Contains(email, "..") {
		return er.New(er.InvalidArgumentCode, "email cannot contain consecutive dots")
	}
	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]
	for _, part := range []string{local, domain} {
		if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") {
			return er.New(er.InvalidArgumentCode, "email cannot start or end with a dot")
		}
	}
	return nil
}

func defaultDisplayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// createUserWithProfile 呼叫端負責交易
func createUserWithProfile(ctx context.Context, tx db.IStore, email, password, displayName string) (*model.User, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, er.New(er.InvalidArgumentCode, "password must be at least 6 characters")
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = defaultDisplayName(email)
	}

	if _, err := tx.GetUserByEmail(ctx, email); err == nil {
		return nil, er.New(er.InvalidOperationCode, "email already registered")
	} else if !db.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, "hash password failed")
	}

	user := &model.User{Email: email, PasswordHash: string(hash)}
	if err := tx.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	if err := tx.CreateProfile(ctx, &model.Profile{
		UserID:      user.ID,
		Email:       email,
		DisplayName: displayName,
	}); err != nil {
		return nil, err
	}
	return user, nil
}

func checkPassword(user *model.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (s *UserService) SignUp(ctx context.Context, email, password, displayName string) (*model.User, error) {
	var user *model.User
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		var err error
		user, err = createUserWithProfile(ctx, tx, email, password, displayName)
		return err
	})
	if err != nil {
		return nil, asAnaError(err)
	}
	return user, nil
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	user, err := s.store.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if db.IsNotFound(err) {
			return nil, er.New(er.UnauthenticatedCode, "invalid email or password")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	if !checkPassword(user, password) {
		return nil, er.New(er.UnauthenticatedCode, "invalid email or password")
	}

	dur := time.Duration(constants.AccessTokenDuration) * time.Hour
	accessToken, _, err := s.tokenMaker.CreateToken(user.Email, user.ID, dur)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, "created accessToken failed")
	}

	return &SignInResult{
		AccessToken: accessToken,
		ExpiresAt:   timeNow().Add(dur),
		User:        *user,
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !db.IsNotFound(err) {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, er.New(er.UserNotFoundCode, "user not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	profile = &model.Profile{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: defaultDisplayName(user.Email),
	}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, displayName, avatarURL *string) (*model.Profile, error) {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if displayName != nil {
		name := strings.TrimSpace(*displayName)
		if name == "" {
			return nil, er.New(er.BadRequestCode, "display name cannot be empty")
		}
		updates["display_name"] = name
	}
	if avatarURL != nil {
		updates["avatar_url"] = strings.TrimSpace(*avatarURL)
	}

	if len(updates) > 0 {
		updates["updated_at"] = timeNow()
		if err := s.store.UpdateProfile(ctx, userID, updates); err != nil {
			return nil, er.New(er.InternalErrorCode, err.Error())
		}
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return profile, nil
}

func (s *UserService) Me(ctx context.Context, userID uuid.UUID) (*MeResult, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	isAdmin, err := s.store.HasRole(ctx, userID, model.RoleAdmin)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return &MeResult{Profile: *profile, IsAdmin: isAdmin}, nil
}

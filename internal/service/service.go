package service

import (
	"context"
	"time"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/constants"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/producer"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ErrMsgAuthRequired      = "sign in required"
	ErrMsgPermissionDenied  = "admin role required"
	ErrMsgRateNotConfigured = "RateNotConfigured"

	publishTimeout = 5 * time.Second
)

var timeNow = func() time.Time { return time.Now().UTC() }

// requireUser 未登入回傳 er.UnauthenticatedCode
func requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return er.New(er.UnauthenticatedCode, ErrMsgAuthRequired)
	}
	return nil
}

// requireAdmin 角色一律在 server 端檢查, 不信任前端
// 錯誤:
//   - er.UnauthenticatedCode 401: 未登入
//   - er.UnauthorizedCode 403: 非管理者
//   - er.InternalErrorCode 500: 資料庫操作錯誤
func requireAdmin(ctx context.Context, roles db.IUserRoleRepository, actor uuid.UUID) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	ok, err := roles.HasRole(ctx, actor, model.RoleAdmin)
	if err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	if !ok {
		return er.New(er.UnauthorizedCode, ErrMsgPermissionDenied)
	}
	return nil
}

// asAnaError 已經是 AnaError 直接回傳, 其他錯誤包成 500
func asAnaError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*er.AnaError); ok {
		return err
	}
	return er.New(er.InternalErrorCode, err.Error())
}

// eventPublisher 交易提交後才送出事件, 失敗只記錄
type eventPublisher struct {
	publisher producer.IEventPublisher
}

func newEventPublisher(publisher producer.IEventPublisher) eventPublisher {
	if publisher == nil {
		publisher = producer.NoopPublisher{}
	}
	return eventPublisher{publisher: publisher}
}

func (p eventPublisher) publish(event model.Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := p.publisher.Publish(ctx, event); err != nil {
			log.Error().Err(err).
				Str("event_type", string(event.Type())).
				Str("key", event.Key()).
				Msg("publish domain event failed")
		}
	}()
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = constants.DefaultPaging
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPagingSize
	}
	if pageSize > constants.MaxPagingSize {
		pageSize = constants.MaxPagingSize
	}
	return page, pageSize
}

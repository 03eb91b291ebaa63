package service

import (
	"context"
	"strings"
	"time"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/producer"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DesignRequestFields 客製設計申請表單
type DesignRequestFields struct {
	DesignType           string
	MaterialPreference   string
	BudgetRange          string
	Description          string
	SpecialRequirements  string
	ContactPhone         string
	PreferredContactTime string
}

// DesignStatusUpdate 後台更新狀態, nil 欄位不更新
type DesignStatusUpdate struct {
	Status                  model.DesignStatus
	AdminNotes              *string
	EstimatedPrice          *decimal.Decimal
	EstimatedCompletionDate *time.Time
}

type IDesignRequestService interface {
	// CreateRequest 狀態從 pending 開始
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.BadRequestCode 400: 缺少設計類型或描述
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	CreateRequest(ctx context.Context, userID uuid.UUID, fields DesignRequestFields) (*model.CustomDesignRequest, error)

	// ListMyRequests 新的在前
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	ListMyRequests(ctx context.Context, userID uuid.UUID) ([]model.CustomDesignRequest, error)

	// ListRequests status 為 nil 時列出全部
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UnauthorizedCode 403: 非管理者
	//   - er.BadRequestCode 400: 無效的狀態
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	ListRequests(ctx context.Context, actor uuid.UUID, status *model.DesignStatus) ([]model.CustomDesignRequest, error)

	// UpdateStatus 依狀態轉換表檢查
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UnauthorizedCode 403: 非管理者
	//   - er.BadRequestCode 400: 無效的狀態或估價
	//   - er.NotFoundCode: 申請不存在
	//   - er.InvalidOperationCode: 不允許的狀態轉換
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	UpdateStatus(ctx context.Context, actor, id uuid.UUID, update DesignStatusUpdate) (*model.CustomDesignRequest, error)
}

type DesignRequestService struct {
	store     db.IStore
	publisher eventPublisher
}

var _ IDesignRequestService = (*DesignRequestService)(nil)

func NewDesignRequestService(store db.IStore, publisher producer.IEventPublisher) IDesignRequestService {
	if store == nil {
		panic("design request service missing required dependency store")
	}
	return &DesignRequestService{
		store:     store,
		publisher: newEventPublisher(publisher),
	}
}

func (s *DesignRequestService) CreateRequest(ctx context.Context, userID uuid.UUID, fields DesignRequestFields) (*model.CustomDesignRequest, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	req := &model.CustomDesignRequest{
		UserID:               userID,
		DesignType:           strings.TrimSpace(fields.DesignType),
		MaterialPreference:   strings.TrimSpace(fields.MaterialPreference),
		BudgetRange:          strings.TrimSpace(fields.BudgetRange),
		Description:          strings.TrimSpace(fields.Description),
		SpecialRequirements:  strings.TrimSpace(fields.SpecialRequirements),
		ContactPhone:         strings.TrimSpace(fields.ContactPhone),
		PreferredContactTime: strings.TrimSpace(fields.PreferredContactTime),
		Status:               model.DesignPending,
	}
	if req.DesignType == "" {
		return nil, er.New(er.BadRequestCode, "design type is required")
	}
	if req.Description == "" {
		return nil, er.New(er.BadRequestCode, "description is required")
	}

	if err := s.store.CreateDesignRequest(ctx, req); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return req, nil
}

func (s *DesignRequestService) ListMyRequests(ctx context.Context, userID uuid.UUID) ([]model.CustomDesignRequest, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	reqs, err := s.store.ListDesignRequestsByUser(ctx, userID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return reqs, nil
}

func (s *DesignRequestService) ListRequests(ctx context.Context, actor uuid.UUID, status *model.DesignStatus) ([]model.CustomDesignRequest, error) {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, er.New(er.BadRequestCode, "invalid status")
	}

	reqs, err := s.store.ListDesignRequests(ctx, status)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return reqs, nil
}

func (s *DesignRequestService) UpdateStatus(ctx context.Context, actor, id uuid.UUID, update DesignStatusUpdate) (*model.CustomDesignRequest, error) {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return nil, err
	}
	if !update.Status.IsValid() {
		return nil, er.New(er.BadRequestCode, "invalid status")
	}
	if update.EstimatedPrice != nil && update.EstimatedPrice.IsNegative() {
		return nil, er.New(er.BadRequestCode, "estimated price cannot be negative")
	}

	var (
		req  *model.CustomDesignRequest
		from model.DesignStatus
	)
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		var err error
		req, err = tx.GetDesignRequestForUpdate(ctx, id)
		if err != nil {
			if db.IsNotFound(err) {
				return er.New(er.NotFoundCode, "design request not found")
			}
			return err
		}

		from = req.Status
		if !from.CanTransitionTo(update.Status) {
			return er.New(er.InvalidOperationCode, "cannot change status from "+string(from)+" to "+string(update.Status))
		}

		req.Status = update.Status
		if update.AdminNotes != nil {
			req.AdminNotes = strings.TrimSpace(*update.AdminNotes)
		}
		if update.EstimatedPrice != nil {
			req.EstimatedPrice = decimal.NewNullDecimal(update.EstimatedPrice.Round(2))
		}
		if update.EstimatedCompletionDate != nil {
			d := update.EstimatedCompletionDate.UTC()
			req.EstimatedCompletionDate = &d
		}
		return tx.UpdateDesignRequest(ctx, req)
	})
	if err != nil {
		return nil, asAnaError(err)
	}

	if from != req.Status {
		s.publisher.publish(model.DesignRequestStatusChangedEvent{
			BaseEvent: model.NewBaseEvent(model.DesignRequestStatusChangedEventName, req.ID.String()),
			RequestID: req.ID,
			UserID:    req.UserID,
			From:      from,
			To:        req.Status,
			ChangedBy: actor,
		})
	}
	return req, nil
}

package util

import (
	"context"

	"github.com/RoyceAzure/rj/api/token"
	"github.com/Sathish182603/Gleam-Heaven/internal/constants"
	"github.com/google/uuid"
)

func GetTokenPayloadFromContext[T token.UserIDConstraint](ctx context.Context) *token.Payload[T] {
	var tokenPayload *token.Payload[T]

	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		tokenPayload, _ = v.(*token.Payload[T])
	}

	return tokenPayload
}

// GetUserIDFromContext 未登入時回傳 uuid.Nil, 由 service 判斷是否需要登入
func GetUserIDFromContext(ctx context.Context) uuid.UUID {
	payload := GetTokenPayloadFromContext[uuid.UUID](ctx)
	if payload == nil {
		return uuid.Nil
	}
	return payload.UserId
}

func GetRequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(constants.RequestIDKey).(string); ok {
		return v
	}
	return "unknown"
}

package utils

import (
	"context"

	"equipment-tracker/pkg/contextkeys"
	apperrors "equipment-tracker/pkg/errors"
)

// ActorFromContext достаёт идентификацию пользователя, положенную в контекст
// auth-middleware. Каждая мутирующая операция обязана знать, кто её выполняет.
func ActorFromContext(ctx context.Context) (uint64, string, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		return 0, "", apperrors.ErrUserIDNotFoundInContext
	}

	email, _ := ctx.Value(contextkeys.UserEmailKey).(string)
	return userID, email, nil
}

// ContextWithActor кладёт идентификацию пользователя в контекст.
// Используется middleware и тестами.
func ContextWithActor(ctx context.Context, userID uint64, email string) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.UserEmailKey, email)
}

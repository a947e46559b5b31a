package entity

import (
	"context"
	"errors"
)

type CtxKeyAdmin struct{}

// Admin is the professional authenticated on the relay's private routes.
type Admin struct {
	Subject string
}

func AdminFromContext(ctx context.Context) (Admin, error) {
	admin, ok := ctx.Value(CtxKeyAdmin{}).(Admin)
	if !ok {
		return Admin{}, errors.New("data type casting")
	}

	return admin, nil
}

func SetAdminToContext(ctx context.Context, admin Admin) context.Context {
	return context.WithValue(ctx, CtxKeyAdmin{}, admin)
}

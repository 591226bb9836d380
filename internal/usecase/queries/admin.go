package queries

import (
	"context"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/readmodel"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAdminInactive = errs.New("admin inactive")

type AdminReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AdminRM, error)
	FindByEmail(ctx context.Context, email string) (*readmodel.AdminRM, string, error)
}

type AdminQueries interface {
	GetCurrentAdmin(ctx context.Context, p shared.Principal) (*readmodel.AdminRM, error)
}

type adminQueriesImpl struct {
	readStore AdminReadStore
}

func NewAdminQueries(readStore AdminReadStore) AdminQueries {
	return &adminQueriesImpl{
		readStore: readStore,
	}
}

func (q *adminQueriesImpl) GetCurrentAdmin(ctx context.Context, p shared.Principal) (*readmodel.AdminRM, error) {
	if !p.IsAuthenticated() {
		return nil, shared.Forbidden("view account")
	}
	a, err := q.readStore.FindByID(ctx, p.AdminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.NotFound("admin")
		}
		return nil, shared.FromRepo(err, "admin")
	}
	if !a.IsActive {
		return nil, errs.Mark(ErrAdminInactive, errs.ErrForbidden)
	}
	return a, nil
}

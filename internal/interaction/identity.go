package interaction

import (
	"context"

	"github.com/DEFRA/mpdp-admin-frontend/internal/common"
	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
)

// IdentityManager tells who is acting in the current request, for the audit trail in the logs.
type IdentityManager struct {
	subject string
}

func (i *IdentityManager) Subject() string {
	if i.subject == "" {
		return "anonymous"
	}
	return i.subject
}

func NewIdentityManager(ctx context.Context) *IdentityManager {
	manager := &IdentityManager{}
	if us, ok := ctx.Value(common.CtxKeySession{}).(*entities.UserSession); ok && us != nil {
		manager.subject = us.Email
		if manager.subject == "" {
			manager.subject = us.DisplayName
		}
	}
	return manager
}

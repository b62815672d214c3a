package authz

import (
	_ "embed"
	"errors"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
)

//go:embed model.conf
var modelText string

//go:embed policy.csv
var policyTemplate string

const SubjectAuthenticated = "authenticated"

type Authorizer struct {
	enforcer *casbin.Enforcer
}

// NewAuthorizer loads the built in policy, granting adminScope full access to the admin pages.
func NewAuthorizer(adminScope string) (*Authorizer, error) {
	adminScope = strings.TrimSpace(adminScope)
	if adminScope == "" {
		return nil, errors.New("authz: admin scope must not be empty")
	}

	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	adapter := stringadapter.NewAdapter(strings.ReplaceAll(policyTemplate, "$ADMIN_SCOPE", adminScope))
	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, err
	}
	return &Authorizer{enforcer: enforcer}, nil
}

func SubjectFromScope(scope string) string {
	return "scope:" + strings.TrimSpace(scope)
}

// Subjects lists everything a session may act as. No session means no subjects.
func Subjects(us *entities.UserSession) []string {
	if us == nil {
		return nil
	}
	subjects := []string{SubjectAuthenticated}
	for _, scope := range us.Scope {
		subjects = append(subjects, SubjectFromScope(scope))
	}
	return subjects
}

// Authorize allows the request if any of the session's subjects is allowed.
func (a *Authorizer) Authorize(us *entities.UserSession, path string, method string) (bool, error) {
	for _, sub := range Subjects(us) {
		ok, err := a.enforcer.Enforce(sub, path, method)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

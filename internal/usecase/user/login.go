package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
	"github.com/BruksfildServices01/escala-trocas/internal/auth"
	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

type Auditor interface {
	Dispatch(e audit.Entry)
}

// ======================================================
// LOGIN
// ======================================================

type LoginInput struct {
	LoginIdentifier string
	Password        string
}

type LoginOutput struct {
	Token string
	User  *models.User
}

type Login struct {
	repo   domain.Repository
	tokens *auth.TokenManager
	audit  Auditor
}

func NewLogin(repo domain.Repository, tokens *auth.TokenManager, auditor Auditor) *Login {
	return &Login{repo: repo, tokens: tokens, audit: auditor}
}

// Execute answers invalid_credentials for unknown logins, wrong passwords
// and inactive users alike.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	u, err := uc.repo.GetByLogin(ctx, domain.NormalizeLogin(in.LoginIdentifier))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if !u.Active || !auth.CheckPassword(u.PasswordHash, in.Password) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	token, err := uc.tokens.Generate(u)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Entry{
		UserID:              u.ID,
		UserLoginIdentifier: u.LoginIdentifier,
		Action:              audit.ActionLogin,
		TargetResourceType:  audit.ResourceUser,
		TargetResourceID:    &u.ID,
	})

	return &LoginOutput{Token: token, User: u}, nil
}

// ======================================================
// ME
// ======================================================

type GetCurrentUser struct {
	repo domain.Repository
}

func NewGetCurrentUser(repo domain.Repository) *GetCurrentUser {
	return &GetCurrentUser{repo: repo}
}

// Execute rejects tokens whose user was removed or deactivated after the
// token was issued.
func (uc *GetCurrentUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("invalid_session")
		}
		return nil, err
	}
	if !u.Active {
		return nil, httperr.ErrBusiness("invalid_session")
	}
	return u, nil
}

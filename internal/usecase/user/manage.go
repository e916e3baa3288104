package user

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
	"github.com/BruksfildServices01/escala-trocas/internal/auth"
	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

const maxNameLength = 100

// ======================================================
// LIST
// ======================================================

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context, actor domain.Actor, f domain.ListFilter) ([]models.User, error) {
	if !actor.Is(domain.RoleAdministrador) {
		return nil, httperr.ErrBusiness("forbidden_role")
	}
	return uc.repo.List(ctx, f)
}

// ======================================================
// CREATE
// ======================================================

type CreateUserInput struct {
	Actor           domain.Actor
	Name            string
	LoginIdentifier string
	Password        string
	Role            string
}

type CreateUser struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateUser(repo domain.Repository, auditor Auditor) *CreateUser {
	return &CreateUser{repo: repo, audit: auditor}
}

func (uc *CreateUser) Execute(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if !in.Actor.Is(domain.RoleAdministrador) {
		return nil, httperr.ErrBusiness("forbidden_role")
	}

	u, err := buildUser(in.Name, in.LoginIdentifier, in.Password, in.Role)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrLoginTaken) {
			return nil, httperr.ErrBusiness("login_already_exists")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Entry{
		UserID:              in.Actor.ID,
		UserLoginIdentifier: in.Actor.Login,
		Action:              audit.ActionUserCreated,
		TargetResourceType:  audit.ResourceUser,
		TargetResourceID:    &u.ID,
		Details: map[string]string{
			"loginIdentifier": u.LoginIdentifier,
			"role":            u.Role,
		},
	})

	return u, nil
}

func buildUser(name, login, password, role string) (*models.User, error) {
	ve := httperr.NewValidation()

	u := &models.User{
		Name:            strings.TrimSpace(name),
		LoginIdentifier: domain.NormalizeLogin(login),
		Role:            strings.ToUpper(strings.TrimSpace(role)),
		Active:          true,
	}

	checkName(ve, u.Name)
	if !domain.ValidLogin(u.LoginIdentifier) {
		ve.Add("loginIdentifier", "Login deve ter de 3 a 50 caracteres (letras, números, ponto, hífen ou sublinhado).")
	}
	if !domain.Role(u.Role).Valid() {
		ve.Add("role", "Perfil inválido.")
	}
	if utf8.RuneCountInString(password) < auth.MinPasswordLength {
		ve.Add("password", "A senha deve ter pelo menos 6 caracteres.")
	}

	if err := ve.Err(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash
	return u, nil
}

func checkName(ve *httperr.ValidationError, name string) {
	if name == "" {
		ve.Add("name", "Nome é obrigatório.")
	} else if utf8.RuneCountInString(name) > maxNameLength {
		ve.Add("name", "Nome muito longo.")
	}
}

// ======================================================
// UPDATE
// ======================================================

// UpdateUserInput leaves nil fields untouched.
type UpdateUserInput struct {
	Actor    domain.Actor
	ID       uint
	Name     *string
	Role     *string
	Active   *bool
	Password *string
}

type UpdateUser struct {
	repo  domain.Repository
	audit Auditor
}

func NewUpdateUser(repo domain.Repository, auditor Auditor) *UpdateUser {
	return &UpdateUser{repo: repo, audit: auditor}
}

func (uc *UpdateUser) Execute(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	if !in.Actor.Is(domain.RoleAdministrador) {
		return nil, httperr.ErrBusiness("forbidden_role")
	}

	u, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}

	ve := httperr.NewValidation()
	var changed []string

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		checkName(ve, name)
		u.Name = name
		changed = append(changed, "name")
	}
	if in.Role != nil {
		role := domain.Role(strings.ToUpper(strings.TrimSpace(*in.Role)))
		if !role.Valid() {
			ve.Add("role", "Perfil inválido.")
		}
		u.Role = string(role)
		changed = append(changed, "role")
	}
	if in.Active != nil {
		u.Active = *in.Active
		changed = append(changed, "active")
	}
	if in.Password != nil && utf8.RuneCountInString(*in.Password) < auth.MinPasswordLength {
		ve.Add("password", "A senha deve ter pelo menos 6 caracteres.")
	}

	if err := ve.Err(); err != nil {
		return nil, err
	}

	// An administrator cannot lock themselves out.
	if u.ID == in.Actor.ID && (!u.Active || u.Role != string(domain.RoleAdministrador)) {
		return nil, httperr.ErrBusiness("cannot_revoke_own_access")
	}

	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
		changed = append(changed, "password")
	}

	if err := uc.repo.Save(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Entry{
		UserID:              in.Actor.ID,
		UserLoginIdentifier: in.Actor.Login,
		Action:              audit.ActionUserUpdated,
		TargetResourceType:  audit.ResourceUser,
		TargetResourceID:    &u.ID,
		Details:             map[string]any{"changed": changed},
	})

	return u, nil
}

// ======================================================
// PROVISION
// ======================================================

type ProvisionInput struct {
	Name            string
	LoginIdentifier string
	Password        string
	Role            string
}

// ProvisionUser creates the user, or resets name, role and password of an
// existing one and reactivates it. Used outside the HTTP surface.
type ProvisionUser struct {
	repo domain.Repository
}

func NewProvisionUser(repo domain.Repository) *ProvisionUser {
	return &ProvisionUser{repo: repo}
}

func (uc *ProvisionUser) Execute(ctx context.Context, in ProvisionInput) (*models.User, bool, error) {
	want, err := buildUser(in.Name, in.LoginIdentifier, in.Password, in.Role)
	if err != nil {
		return nil, false, err
	}

	existing, err := uc.repo.GetByLogin(ctx, want.LoginIdentifier)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := uc.repo.Create(ctx, want); err != nil {
			return nil, false, err
		}
		return want, true, nil
	case err != nil:
		return nil, false, err
	}

	existing.Name = want.Name
	existing.Role = want.Role
	existing.PasswordHash = want.PasswordHash
	existing.Active = true

	if err := uc.repo.Save(ctx, existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

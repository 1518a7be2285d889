package services

import (
	"context"

	"github.com/google/uuid"
	"lessonhub/internal/identity"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/models/request_models"
	"lessonhub/internal/repositories"
	"lessonhub/pkg/utils"
)

type AccountServiceInterface interface {
	Sync(ctx context.Context, claims *identity.Claims) (*db_models.Account, error)
	GetByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdateProfile(ctx context.Context, email string, request request_models.UpdateProfileRequest) (*db_models.Account, error)
	ListAccounts(ctx context.Context, page, pageSize int) ([]db_models.Account, error)
	SetRole(ctx context.Context, id string, role string) error
	DeleteAccount(ctx context.Context, id string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

// Sync returns the local account for verified provider claims, creating it
// with defaults on first sight. Lookup-then-create is not atomic: two
// concurrent first requests for the same email may race, in which case the
// unique email index rejects the second insert and we re-read the winner.
func (a *AccountService) Sync(ctx context.Context, claims *identity.Claims) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if account == nil {
		account = &db_models.Account{
			Name:       claims.Name,
			Email:      claims.Email,
			PhotoURL:   claims.Picture,
			ExternalID: claims.Subject,
			Role:       db_models.RoleUser,
			IsPremium:  false,
		}
		if account.Name == "" {
			account.Name = claims.Email
		}
		if err := a.accountRepo.Insert(ctx, account); err != nil {
			account, err = a.accountRepo.FindByEmail(ctx, claims.Email)
			if err != nil || account == nil {
				return nil, utils.ErrDatabaseError
			}
		}
		return account, nil
	}

	// Refresh provider-owned fields when the provider sent fresher values.
	fields := map[string]interface{}{}
	if claims.Name != "" && claims.Name != account.Name {
		fields["name"] = claims.Name
		account.Name = claims.Name
	}
	if claims.Picture != "" && claims.Picture != account.PhotoURL {
		fields["photo_url"] = claims.Picture
		account.PhotoURL = claims.Picture
	}
	if claims.Subject != "" && claims.Subject != account.ExternalID {
		fields["external_id"] = claims.Subject
		account.ExternalID = claims.Subject
	}
	if len(fields) > 0 {
		if err := a.accountRepo.UpdateFields(ctx, account.ID.String(), fields); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return account, nil
}

func (a *AccountService) GetByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, email string, request request_models.UpdateProfileRequest) (*db_models.Account, error) {
	account, err := a.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = *request.Name
		account.Name = *request.Name
	}
	if request.PhotoURL != nil {
		fields["photo_url"] = *request.PhotoURL
		account.PhotoURL = *request.PhotoURL
	}
	if len(fields) == 0 {
		return account, nil
	}

	if err := a.accountRepo.UpdateFields(ctx, account.ID.String(), fields); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return account, nil
}

func (a *AccountService) ListAccounts(ctx context.Context, page, pageSize int) ([]db_models.Account, error) {
	page, pageSize, err := NormalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	accounts, err := a.accountRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return accounts, nil
}

func (a *AccountService) SetRole(ctx context.Context, id string, role string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrInvalidID
	}
	if !db_models.ValidRole(role) {
		return utils.ErrInvalidRole
	}

	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if err := a.accountRepo.UpdateFields(ctx, id, map[string]interface{}{"role": role}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrInvalidID
	}

	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if err := a.accountRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

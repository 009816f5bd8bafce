package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cropadvisor/entities"
	"cropadvisor/pkg/auth/repository"
)

type accountRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AccountRepository { return &accountRepo{db} }

func (r *accountRepo) Create(ctx context.Context, a *entities.Account) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repository.ErrDuplicateEmail
	}
	return err
}

func (r *accountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entities.Account{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *accountRepo) FindByEmail(ctx context.Context, email string) (*entities.Account, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *accountRepo) FindByID(ctx context.Context, id uint) (*entities.Account, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *accountRepo) first(ctx context.Context, query string, arg any) (*entities.Account, error) {
	var a entities.Account
	if err := r.db.WithContext(ctx).Where(query, arg).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

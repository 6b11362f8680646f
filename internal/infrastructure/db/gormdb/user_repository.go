package gormdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"book-api/internal/domain/apperrors"
	"book-api/internal/domain/entities"
	"book-api/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Hash password before saving
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	userModel := UserModel{
		Id:           userEntity.Id,
		CreatedAt:    userEntity.CreatedAt,
		UpdatedAt:    userEntity.UpdatedAt,
		Name:         userEntity.Name,
		Email:        userEntity.Email,
		Password:     userEntity.Password,
		Tokens:       userEntity.Tokens,
		Professional: userEntity.Professional,
	}

	if err := r.db.Create(&userModel).Error; err != nil {
		// A concurrent registration can slip past the service's
		// existence check; the unique index is the backstop.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ve := apperrors.NewValidationError()
			ve.Add("email", "The email has already been taken.")
			return nil, ve
		}
		return nil, err
	}

	return r.FindById(userEntity.Id)
}

func (r *UserRepository) FindById(id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) AddToken(ctx context.Context, userID uuid.UUID, token string) error {
	return r.mutateTokens(ctx, userID, func(user *entities.User) {
		user.AddToken(token)
	})
}

func (r *UserRepository) RemoveToken(ctx context.Context, userID uuid.UUID, token string) error {
	return r.mutateTokens(ctx, userID, func(user *entities.User) {
		user.RemoveToken(token)
	})
}

// mutateTokens rewrites the token list inside one transaction so two
// concurrent logins cannot drop each other's token.
func (r *UserRepository) mutateTokens(ctx context.Context, userID uuid.UUID, mutate func(*entities.User)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userModel UserModel
		if err := tx.Where("id = ?", userID).First(&userModel).Error; err != nil {
			return err
		}

		user := r.mapToEntity(&userModel)
		mutate(user)

		userModel.Tokens = user.Tokens
		userModel.UpdatedAt = user.UpdatedAt
		return tx.Save(&userModel).Error
	})
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:           userModel.Id,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
		Name:         userModel.Name,
		Email:        userModel.Email,
		Password:     userModel.Password,
		Tokens:       userModel.Tokens,
		Professional: userModel.Professional,
	}
}

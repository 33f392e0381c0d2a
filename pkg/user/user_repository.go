package user

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parth-agrotech/entities"
)

type (
	UserRepository interface {
		GetUsers(ctx context.Context) ([]entities.User, error)
		GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		CountUsersByRole(ctx context.Context, role string) (int64, error)
		CreateUser(ctx context.Context, user *entities.User) error
		UpdateUsername(ctx context.Context, id uuid.UUID, username string) error
		DeleteUser(ctx context.Context, id uuid.UUID) (bool, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	users := []entities.User{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	res := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Update("username", username)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{})
	return res.RowsAffected > 0, res.Error
}

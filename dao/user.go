package dao

import (
	"Cookhub/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 用户名查询，带出资料
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := u.Db.WithContext(ctx).
		Preload("Profile").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) GetWithProfile(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := u.Db.WithContext(ctx).Preload("Profile").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ?", username)
}

// IsEmailExist excludeID 非 0 时排除该用户自身
func (u *Users) IsEmailExist(ctx context.Context, email string, excludeID uint64) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ? AND id <> ?", email, excludeID)
}

// CreateWithProfile 用户与资料在同一事务内创建
func (u *Users) CreateWithProfile(ctx context.Context, user *models.User) error {
	return u.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile").Create(user).Error; err != nil {
			return err
		}
		profile := &models.Profile{UserID: user.ID}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
}

// UpdateProfile 更新邮箱与资料，资料不存在时补建
func (u *Users) UpdateProfile(ctx context.Context, userID uint64, userUpdates, profileUpdates map[string]any) error {
	return u.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(userUpdates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(userUpdates).Error; err != nil {
				return err
			}
		}
		if len(profileUpdates) == 0 {
			return nil
		}
		var profile models.Profile
		if err := tx.Where(models.Profile{UserID: userID}).FirstOrCreate(&profile).Error; err != nil {
			return err
		}
		return tx.Model(&profile).Updates(profileUpdates).Error
	})
}

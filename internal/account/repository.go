package account

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no user has the requested clerk id.
var ErrNotFound = errors.New("account: not found")

type Repository interface {
	Upsert(ctx context.Context, u *User) error
	FindByClerkID(ctx context.Context, clerkID string) (*User, error)
	List(ctx context.Context) ([]User, error)
	DeleteByClerkID(ctx context.Context, clerkID string) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Upsert inserts u or, when its clerk id exists, overwrites the profile fields.
func (r *gormRepository) Upsert(ctx context.Context, u *User) error {
	u.UpdatedAt = time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = u.UpdatedAt
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clerk_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "image_url", "updated_at"}),
	}).Create(u).Error
}

func (r *gormRepository) FindByClerkID(ctx context.Context, clerkID string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("clerk_id = ?", clerkID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *gormRepository) List(ctx context.Context) ([]User, error) {
	users := make([]User, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *gormRepository) DeleteByClerkID(ctx context.Context, clerkID string) error {
	res := r.db.WithContext(ctx).Where("clerk_id = ?", clerkID).Delete(&User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

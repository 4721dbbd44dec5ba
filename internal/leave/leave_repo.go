package leave

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, l *Leave) error
	FindAllByCreatedDesc(ctx context.Context) ([]Leave, error)
	FindByID(ctx context.Context, id uint) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAllByCreatedDesc(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	// id ASC keeps insertion order among equal timestamps
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).First(&l, id).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Leave{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

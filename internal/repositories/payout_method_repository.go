package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sakay/internal/models/db_models"
)

type PayoutMethodRepository interface {
	// Insert stores the method. With resetPrimary the owner's other
	// methods are demoted in the same transaction, so at most one
	// primary survives whatever order callers run in.
	Insert(ctx context.Context, m *db_models.PayoutMethod, resetPrimary bool) error

	FindByID(ctx context.Context, id string) (*db_models.PayoutMethod, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.PayoutMethod, error)

	// Update applies field updates; with resetPrimary the demotion runs
	// first inside the same transaction (uniform with Insert/SetPrimary).
	Update(ctx context.Context, id, userID string, fields map[string]interface{}, resetPrimary bool) error

	SetPrimary(ctx context.Context, userID, methodID string) error
	SetVerified(ctx context.Context, id string, verified bool) error
	Delete(ctx context.Context, id string) error
}

type payoutMethodRepository struct {
	db *gorm.DB
}

func NewPayoutMethodRepository(db *gorm.DB) PayoutMethodRepository {
	return &payoutMethodRepository{db: db}
}

func (r *payoutMethodRepository) demoteOthers(tx *gorm.DB, userID string, exceptID interface{}) error {
	q := tx.Model(&db_models.PayoutMethod{}).Where("user_id = ? AND is_primary = ?", userID, true)
	if exceptID != nil {
		q = q.Where("id <> ?", exceptID)
	}
	return q.Update("is_primary", false).Error
}

func (r *payoutMethodRepository) Insert(ctx context.Context, m *db_models.PayoutMethod, resetPrimary bool) error {
	if !resetPrimary {
		return r.db.WithContext(ctx).Create(m).Error
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.demoteOthers(tx, m.UserID.String(), nil); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
}

func (r *payoutMethodRepository) FindByID(ctx context.Context, id string) (*db_models.PayoutMethod, error) {
	var m db_models.PayoutMethod
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *payoutMethodRepository) ListByUser(ctx context.Context, userID string) ([]db_models.PayoutMethod, error) {
	var methods []db_models.PayoutMethod
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&methods).Error
	return methods, err
}

func (r *payoutMethodRepository) Update(ctx context.Context, id, userID string, fields map[string]interface{}, resetPrimary bool) error {
	if !resetPrimary {
		return r.db.WithContext(ctx).
			Model(&db_models.PayoutMethod{}).
			Where("id = ?", id).
			Updates(fields).Error
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.demoteOthers(tx, userID, id); err != nil {
			return err
		}
		return tx.Model(&db_models.PayoutMethod{}).
			Where("id = ?", id).
			Updates(fields).Error
	})
}

func (r *payoutMethodRepository) SetPrimary(ctx context.Context, userID, methodID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.demoteOthers(tx, userID, methodID); err != nil {
			return err
		}
		res := tx.Model(&db_models.PayoutMethod{}).
			Where("id = ? AND user_id = ?", methodID, userID).
			Update("is_primary", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrStaleWrite
		}
		return nil
	})
}

func (r *payoutMethodRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	return r.db.WithContext(ctx).
		Model(&db_models.PayoutMethod{}).
		Where("id = ?", id).
		Update("verified", verified).Error
}

func (r *payoutMethodRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.PayoutMethod{}, "id = ?", id).Error
}

package dao

import (
	"context"
	"errors"

	"agentdash/agentdash/sources/psql/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotDAO reads and writes string-keyed state slots. It satisfies chat.Slot.
type SlotDAO struct {
	DB *gorm.DB
}

func NewSlotDAO(db *gorm.DB) *SlotDAO {
	return &SlotDAO{DB: db}
}

func (dao *SlotDAO) Get(ctx context.Context, key string) (string, bool, error) {
	var slot models.StateSlot
	err := dao.DB.WithContext(ctx).First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return slot.Value, true, nil
}

func (dao *SlotDAO) Put(ctx context.Context, key, value string) error {
	slot := models.StateSlot{Key: key, Value: value}
	return dao.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
}

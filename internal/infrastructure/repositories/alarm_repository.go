package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SooLee99/safe-guide-backend/domain"
)

// AlarmRepositoryImpl implements domain.AlarmRepository using GORM.
// Alarms are produced elsewhere; this subsystem only pages through
// them per owner.
type AlarmRepositoryImpl struct {
	db *gorm.DB
}

// DBAlarm represents the database model for Alarm (with GORM tags)
type DBAlarm struct {
	ID           uint      `gorm:"primaryKey"`
	OwnerLoginID string    `gorm:"column:owner_login_id;index;size:64"`
	Payload      string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAlarm) TableName() string {
	return "alarms"
}

// NewAlarmRepository creates a new alarm repository
func NewAlarmRepository(db *gorm.DB) domain.AlarmRepository {
	return &AlarmRepositoryImpl{db: db}
}

// FindPageByOwner implements domain.AlarmRepository. Pages are
// zero-based and ordered newest first.
func (r *AlarmRepositoryImpl) FindPageByOwner(ctx context.Context, ownerLoginID string, page, size int) (*domain.Page[domain.Alarm], error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&DBAlarm{}).
		Where("owner_login_id = ?", ownerLoginID).
		Count(&total).Error
	if err != nil {
		return nil, err
	}

	var dbAlarms []DBAlarm
	err = r.db.WithContext(ctx).
		Where("owner_login_id = ?", ownerLoginID).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&dbAlarms).Error
	if err != nil {
		return nil, err
	}

	alarms := make([]domain.Alarm, 0, len(dbAlarms))
	for i := range dbAlarms {
		alarms = append(alarms, domain.Alarm{
			ID:           dbAlarms[i].ID,
			OwnerLoginID: dbAlarms[i].OwnerLoginID,
			Payload:      dbAlarms[i].Payload,
			CreatedAt:    dbAlarms[i].CreatedAt,
		})
	}

	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	return &domain.Page[domain.Alarm]{
		Content:    alarms,
		Page:       page,
		Size:       size,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

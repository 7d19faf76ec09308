package repository

import (
	"context"
	"time"

	"github.com/findme-ke/findme-api/internal/dto"
	"github.com/findme-ke/findme-api/internal/model"
	ctxutil "github.com/findme-ke/findme-api/pkg/context"
	"github.com/findme-ke/findme-api/pkg/logger"
	"gorm.io/gorm"
)

type MissingPersonRepository struct {
	db *gorm.DB
}

func NewMissingPersonRepository(db *gorm.DB) *MissingPersonRepository {
	return &MissingPersonRepository{db: db}
}

// Create inserts a report inside a transaction. The unique index on
// case_number is the authoritative duplicate guard.
func (r *MissingPersonRepository) Create(ctx context.Context, person *model.MissingPerson) error {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Create")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(person).Error
	})
	duration := time.Since(start)

	if err != nil {
		logger.WarnWithContext(ctx, "Failed to create report").
			String("full_name", person.FullName).
			Duration(duration).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Report created").
		Int("report_id", int(person.ID)).
		Int("owner_id", int(person.UserID)).
		Duration(duration).
		Log()

	return nil
}

func (r *MissingPersonRepository) GetByID(ctx context.Context, id uint) (*model.MissingPerson, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "GetByID")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	var person model.MissingPerson
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&person)
	if result.Error != nil {
		logger.DebugWithContext(ctx, "Failed to get report by ID").
			Int("report_id", int(id)).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &person, nil
}

// GetAll returns every report in insertion order
func (r *MissingPersonRepository) GetAll(ctx context.Context) ([]model.MissingPerson, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "GetAll")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	var persons []model.MissingPerson
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&persons).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list reports").
			Err(err).
			Log()
		return nil, err
	}

	return persons, nil
}

func (r *MissingPersonRepository) GetByOwner(ctx context.Context, userID uint) ([]model.MissingPerson, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "GetByOwner")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	var persons []model.MissingPerson
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&persons).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list reports by owner").
			Int("owner_id", int(userID)).
			Err(err).
			Log()
		return nil, err
	}

	return persons, nil
}

// Update applies the given column set inside a transaction and reloads the
// row. gorm refreshes updated_at on every mutation.
func (r *MissingPersonRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.MissingPerson, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Update")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	start := time.Now()
	var person model.MissingPerson

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.MissingPerson{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&person).Error
	})
	duration := time.Since(start)

	if err != nil {
		logger.WarnWithContext(ctx, "Failed to update report").
			Int("report_id", int(id)).
			Duration(duration).
			Err(err).
			Log()
		return nil, err
	}

	logger.InfoWithContext(ctx, "Report updated").
		Int("report_id", int(id)).
		Int("field_count", len(updates)).
		Duration(duration).
		Log()

	return &person, nil
}

// Delete removes a report permanently
func (r *MissingPersonRepository) Delete(ctx context.Context, id uint) error {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Delete")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().Delete(&model.MissingPerson{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	duration := time.Since(start)

	if err != nil {
		logger.WarnWithContext(ctx, "Failed to delete report").
			Int("report_id", int(id)).
			Duration(duration).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Report deleted").
		Int("report_id", int(id)).
		Duration(duration).
		Log()

	return nil
}

// Search composes the optional AND-combined filters, counts the full match
// set, then returns one page ordered by last_seen_date descending.
// LOWER(...) LIKE keeps the substring matches case-insensitive on both
// postgres and sqlite.
func (r *MissingPersonRepository) Search(ctx context.Context, filters dto.SearchFilters, limit, offset int) ([]model.MissingPerson, int64, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Search")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	start := time.Now()
	query := r.db.WithContext(ctx).Model(&model.MissingPerson{})

	if filters.Name != "" {
		query = query.Where("LOWER(full_name) LIKE LOWER(?)", "%"+filters.Name+"%")
	}
	if filters.Location != "" {
		query = query.Where("LOWER(last_seen_location) LIKE LOWER(?)", "%"+filters.Location+"%")
	}
	if filters.AgeMin != nil {
		query = query.Where("age >= ?", *filters.AgeMin)
	}
	if filters.AgeMax != nil {
		query = query.Where("age <= ?", *filters.AgeMax)
	}
	if filters.Gender != "" {
		query = query.Where("LOWER(gender) = LOWER(?)", filters.Gender)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.DateFrom != nil {
		query = query.Where("last_seen_date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("last_seen_date <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count search results").
			Err(err).
			Log()
		return nil, 0, err
	}

	var persons []model.MissingPerson
	if err := query.Order("last_seen_date DESC").Limit(limit).Offset(offset).Find(&persons).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to run search query").
			Err(err).
			Log()
		return nil, 0, err
	}

	logger.DebugWithContext(ctx, "Search executed").
		Int64("total", total).
		Int("returned_count", len(persons)).
		Duration(time.Since(start)).
		Log()

	return persons, total, nil
}

// FilterByLocation matches the location substring without pagination
func (r *MissingPersonRepository) FilterByLocation(ctx context.Context, location string) ([]model.MissingPerson, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "FilterByLocation")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	var persons []model.MissingPerson
	err := r.db.WithContext(ctx).
		Where("LOWER(last_seen_location) LIKE LOWER(?)", "%"+location+"%").
		Order("last_seen_date DESC").
		Find(&persons).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to filter by location").
			String("location", location).
			Err(err).
			Log()
		return nil, err
	}

	return persons, nil
}

// GetRecent returns reports created within the last N days, newest first
func (r *MissingPersonRepository) GetRecent(ctx context.Context, days int) ([]model.MissingPerson, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "GetRecent")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	var persons []model.MissingPerson
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&persons).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to get recent reports").
			Int("days", days).
			Err(err).
			Log()
		return nil, err
	}

	return persons, nil
}

// QuickSearch matches the term as a case-insensitive substring against name,
// location, contact name or distinguishing features (OR semantics)
func (r *MissingPersonRepository) QuickSearch(ctx context.Context, term string) ([]model.MissingPerson, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "QuickSearch")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	pattern := "%" + term + "%"

	var persons []model.MissingPerson
	err := r.db.WithContext(ctx).
		Where(
			"LOWER(full_name) LIKE LOWER(?) OR LOWER(last_seen_location) LIKE LOWER(?) OR LOWER(contact_name) LIKE LOWER(?) OR LOWER(distinguishing_features) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern,
		).
		Order("last_seen_date DESC").
		Find(&persons).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to run quick search").
			String("term", term).
			Err(err).
			Log()
		return nil, err
	}

	return persons, nil
}

// CountByStatus groups the whole table by status in a single query
func (r *MissingPersonRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "CountByStatus")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "repository")

	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&model.MissingPerson{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to count reports by status").
			Err(err).
			Log()
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

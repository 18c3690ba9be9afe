package repositories

import (
	"context"
	"errors"
	"strings"

	"digicard.pro/pkg/queryparams"

	"gorm.io/gorm"
)

// ErrNotFound repo katmanının ortak "kayıt yok" hatasıdır. Servisler
// bunu kendi hata tiplerine çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm entity repoların paylaştığı temel CRUD arayüzü.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Save(ctx context.Context, entity *T) error
	Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error
	Delete(ctx context.Context, id uint) error
	GetAll(params queryparams.ListParams) ([]T, int64, error)
	GetCount() (int64, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository generic CRUD implementasyonu. Denetim alanları
// (CreatedBy vb.) BaseModel hook'ları tarafından context'ten doldurulur.
type BaseRepository[T any] struct {
	db          *gorm.DB
	allowedSort map[string]bool
}

// NewBaseRepository verilen bağlantı (veya transaction) ile çalışan
// bir base repo oluşturur.
func NewBaseRepository[T any](db *gorm.DB) IBaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSort: map[string]bool{"id": true, "created_at": true}}
}

// SetAllowedSortColumns sıralamaya izin verilen kolonları belirler
// (SQL injection'a karşı allow-list).
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSort = make(map[string]bool, len(columns))
	for _, col := range columns {
		r.allowedSort[col] = true
	}
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error {
	if updatedBy != 0 {
		data["updated_by"] = updatedBy
	}
	var entity T
	result := r.db.WithContext(ctx).Model(&entity).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) GetAll(params queryparams.ListParams) ([]T, int64, error) {
	var entities []T
	var totalCount int64

	var entity T
	query := r.db.Model(&entity)

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return entities, 0, nil
	}

	sortBy := params.SortBy
	if !r.allowedSort[sortBy] {
		sortBy = queryparams.DefaultSortBy
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.
		Order(sortBy + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&entities).Error
	return entities, totalCount, err
}

func (r *BaseRepository[T]) GetCount() (int64, error) {
	var entity T
	var count int64
	err := r.db.Model(&entity).Count(&count).Error
	return count, err
}

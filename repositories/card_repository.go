package repositories

import (
	"context"
	"errors"

	"digicard.pro/configs/configsdatabase"
	"digicard.pro/models"
	"digicard.pro/pkg/queryparams"

	"gorm.io/gorm"
)

// ICardRepository kartvizit veritabanı işlemleri için arayüz.
type ICardRepository interface {
	CreateCard(ctx context.Context, card *models.Card) error
	GetCardByID(id uint) (*models.Card, error)
	GetCardBySlug(slug string) (*models.Card, error)
	SlugExists(slug string) (bool, error)
	FindAllByUserIDPaginated(userID uint, params queryparams.ListParams) ([]models.Card, int64, error)
	FindAllPaginated(params queryparams.ListParams) ([]models.Card, int64, error)
	CountByUserID(userID uint) (int64, error)
	CountAll() (int64, error)
	SumViews() (int64, error)
	SaveCard(ctx context.Context, card *models.Card) error
	SaveDetail(ctx context.Context, detail *models.CardDetail) error
	DeleteCard(ctx context.Context, id uint) error
	IncrementViews(id uint) error

	// Alt kalemler (hizmet / saat / galeri)
	CreateService(ctx context.Context, item *models.CardService) error
	SaveService(ctx context.Context, item *models.CardService) error
	FindServiceByItemID(cardID uint, itemID string) (*models.CardService, error)
	DeleteServiceByItemID(ctx context.Context, cardID uint, itemID string) error
	MaxServicePosition(cardID uint) (int, error)

	SaveHour(ctx context.Context, hour *models.BusinessHour) error
	FindHourByItemID(cardID uint, itemID string) (*models.BusinessHour, error)
	ReplaceHours(ctx context.Context, cardID uint, hours []models.BusinessHour) error

	CreateGalleryImage(ctx context.Context, image *models.GalleryImage) error
	DeleteGalleryImageByItemID(ctx context.Context, cardID uint, itemID string) error
	MaxGalleryPosition(cardID uint) (int, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	base IBaseRepository[models.Card]
	db   *gorm.DB
}

// NewCardRepository global bağlantı ile çalışan repo oluşturur.
func NewCardRepository() ICardRepository {
	return NewCardRepositoryTx(configsdatabase.GetDB())
}

// NewCardRepositoryTx verilen transaction/bağlantı ile çalışan repo oluşturur.
func NewCardRepositoryTx(db *gorm.DB) ICardRepository {
	base := NewBaseRepository[models.Card](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "is_enabled", "views", "slug"})
	return &CardRepository{base: base, db: db}
}

// preloadAll kartın tüm ilişkilerini sıralı yükler.
func (r *CardRepository) preloadAll() *gorm.DB {
	return r.db.
		Preload("Detail").
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("card_services.position ASC, card_services.id ASC") }).
		Preload("BusinessHours").
		Preload("Gallery", func(db *gorm.DB) *gorm.DB { return db.Order("gallery_images.position ASC, gallery_images.id ASC") })
}

func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	// Detail ve alt kalemler cascade ile birlikte yazılır.
	return r.base.Create(ctx, card)
}

func (r *CardRepository) GetCardByID(id uint) (*models.Card, error) {
	var card models.Card
	err := r.preloadAll().First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) GetCardBySlug(slug string) (*models.Card, error) {
	var card models.Card
	err := r.preloadAll().Where("slug = ?", slug).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Card{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// FindAllByUserIDPaginated kullanıcıya ait kartvizitleri listeler.
// İsim filtresi detail tablosuna JOIN ile uygulanır.
func (r *CardRepository) FindAllByUserIDPaginated(userID uint, params queryparams.ListParams) ([]models.Card, int64, error) {
	if userID == 0 {
		return nil, 0, errors.New("geçersiz User ID")
	}
	var results []models.Card
	var totalCount int64

	query := r.db.Model(&models.Card{}).
		Joins("JOIN card_details ON card_details.card_id = cards.id AND card_details.deleted_at IS NULL").
		Where("cards.creator_user_id = ?", userID)

	if params.Name != "" {
		searchValue := "%" + params.Name + "%"
		query = query.Where(
			r.db.Where("card_details.full_name ILIKE ?", searchValue).
				Or("card_details.company_name ILIKE ?", searchValue),
		)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	allowedSortColumns := map[string]string{
		"id":         "cards.id",
		"created_at": "cards.created_at",
		"is_enabled": "cards.is_enabled",
		"views":      "cards.views",
		"full_name":  "card_details.full_name",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "cards.created_at"
	}
	orderBy := params.OrderBy
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.
		Order(orderColumn + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Select("cards.*").
		Preload("Detail").
		Find(&results).Error
	return results, totalCount, err
}

// FindAllPaginated tüm kartvizitleri listeler (yönetici görünümü).
func (r *CardRepository) FindAllPaginated(params queryparams.ListParams) ([]models.Card, int64, error) {
	var results []models.Card
	var totalCount int64

	query := r.db.Model(&models.Card{}).
		Joins("JOIN card_details ON card_details.card_id = cards.id AND card_details.deleted_at IS NULL")

	if params.Name != "" {
		searchValue := "%" + params.Name + "%"
		query = query.Where(
			r.db.Where("card_details.full_name ILIKE ?", searchValue).
				Or("card_details.company_name ILIKE ?", searchValue),
		)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	allowedSortColumns := map[string]string{
		"id":         "cards.id",
		"created_at": "cards.created_at",
		"is_enabled": "cards.is_enabled",
		"views":      "cards.views",
		"full_name":  "card_details.full_name",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "cards.created_at"
	}
	orderBy := params.OrderBy
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.
		Order(orderColumn + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Select("cards.*").
		Preload("Detail").
		Find(&results).Error
	return results, totalCount, err
}

func (r *CardRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Card{}).Where("creator_user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *CardRepository) CountAll() (int64, error) {
	return r.base.GetCount()
}

// SumViews tüm kartların toplam görüntülenme sayısını döner.
func (r *CardRepository) SumViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.Card{}).Select("COALESCE(SUM(views), 0)").Scan(&total).Error
	return total, err
}

func (r *CardRepository) SaveCard(ctx context.Context, card *models.Card) error {
	// Sadece ana tabloyu yazar; ilişkiler ayrı metodlarla yönetilir.
	return r.db.WithContext(ctx).Omit("Detail", "Services", "BusinessHours", "Gallery").Save(card).Error
}

func (r *CardRepository) SaveDetail(ctx context.Context, detail *models.CardDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

// DeleteCard kartı ve tüm alt kayıtlarını kalıcı olarak siler.
// Versiyonlama veya soft-delete yok: kayıt tamamen gider.
func (r *CardRepository) DeleteCard(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Unscoped().Where("card_id = ?", id).Delete(&models.CardDetail{}).Error; err != nil {
		return err
	}
	if err := db.Unscoped().Where("card_id = ?", id).Delete(&models.CardService{}).Error; err != nil {
		return err
	}
	if err := db.Unscoped().Where("card_id = ?", id).Delete(&models.BusinessHour{}).Error; err != nil {
		return err
	}
	if err := db.Unscoped().Where("card_id = ?", id).Delete(&models.GalleryImage{}).Error; err != nil {
		return err
	}
	result := db.Unscoped().Delete(&models.Card{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews görüntülenme sayacını tek SQL ifadesiyle artırır.
// Hook'lar ve UpdatedAt tetiklenmez.
func (r *CardRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Card{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// --- Hizmet kalemleri ---

func (r *CardRepository) CreateService(ctx context.Context, item *models.CardService) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *CardRepository) SaveService(ctx context.Context, item *models.CardService) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *CardRepository) FindServiceByItemID(cardID uint, itemID string) (*models.CardService, error) {
	var item models.CardService
	err := r.db.Where("card_id = ? AND item_id = ?", cardID, itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CardRepository) DeleteServiceByItemID(ctx context.Context, cardID uint, itemID string) error {
	result := r.db.WithContext(ctx).Unscoped().
		Where("card_id = ? AND item_id = ?", cardID, itemID).
		Delete(&models.CardService{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CardRepository) MaxServicePosition(cardID uint) (int, error) {
	var max int
	err := r.db.Model(&models.CardService{}).Where("card_id = ?", cardID).
		Select("COALESCE(MAX(position), 0)").Scan(&max).Error
	return max, err
}

// --- Çalışma saatleri ---

func (r *CardRepository) SaveHour(ctx context.Context, hour *models.BusinessHour) error {
	return r.db.WithContext(ctx).Save(hour).Error
}

func (r *CardRepository) FindHourByItemID(cardID uint, itemID string) (*models.BusinessHour, error) {
	var hour models.BusinessHour
	err := r.db.Where("card_id = ? AND item_id = ?", cardID, itemID).First(&hour).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &hour, nil
}

// ReplaceHours mevcut saat kayıtlarını verilen tam liste ile değiştirir
// (backfill sonrası yedi kayıt).
func (r *CardRepository) ReplaceHours(ctx context.Context, cardID uint, hours []models.BusinessHour) error {
	db := r.db.WithContext(ctx)
	if err := db.Unscoped().Where("card_id = ?", cardID).Delete(&models.BusinessHour{}).Error; err != nil {
		return err
	}
	for i := range hours {
		hours[i].CardID = cardID
	}
	return db.Create(&hours).Error
}

// --- Galeri ---

func (r *CardRepository) CreateGalleryImage(ctx context.Context, image *models.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *CardRepository) DeleteGalleryImageByItemID(ctx context.Context, cardID uint, itemID string) error {
	result := r.db.WithContext(ctx).Unscoped().
		Where("card_id = ? AND item_id = ?", cardID, itemID).
		Delete(&models.GalleryImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CardRepository) MaxGalleryPosition(cardID uint) (int, error) {
	var max int
	err := r.db.Model(&models.GalleryImage{}).Where("card_id = ?", cardID).
		Select("COALESCE(MAX(position), 0)").Scan(&max).Error
	return max, err
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*CardRepository)(nil)

// services/card_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"digicard.pro/configs"
	"digicard.pro/configs/configslog"
	"digicard.pro/models"
	"digicard.pro/pkg/cardview"
	"digicard.pro/pkg/queryparams"
	"digicard.pro/repositories"
	"digicard.pro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound         CardServiceError = "kartvizit bulunamadı"
	ErrCardCreationFailed   CardServiceError = "kartvizit oluşturulamadı"
	ErrCardUpdateFailed     CardServiceError = "kartvizit güncellenemedi"
	ErrCardDeletionFailed   CardServiceError = "kartvizit silinemedi"
	ErrCardForbidden        CardServiceError = "bu işlem için yetkiniz yok"
	ErrCrdInvalidInput      CardServiceError = "geçersiz girdi verisi"
	ErrCardNameRequired     CardServiceError = "isim alanı zorunludur"
	ErrCardSlugFailed       CardServiceError = "kartvizit için benzersiz adres üretilemedi"
	ErrCardItemNotFound     CardServiceError = "kartvizit kalemi bulunamadı"
	ErrTemplateUnknown      CardServiceError = "bilinmeyen şablon"
	ErrTemplateLocked       CardServiceError = "bu şablon premium aboneliği gerektirir"
	ErrSectionMoveRefused   CardServiceError = "bölüm bu yönde taşınamaz"
	ErrHourEntryNotFound    CardServiceError = "çalışma saati kaydı bulunamadı"
	ErrGalleryImageRequired CardServiceError = "görsel adresi zorunludur"
)

// CardSettings UpdateCard ile birlikte güncellenen ana tablo alanları.
type CardSettings struct {
	IsEnabled    bool
	PrimaryColor string
	ShowMap      bool
	CustomMapURL string
}

// ICardService kartvizit işlemleri için arayüz.
type ICardService interface {
	CreateCard(ctx context.Context, creatorUserID uint, detailData models.CardDetail) (*models.Card, error)
	GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error)
	GetPublicCard(ctx context.Context, slugOrID string) (*models.Card, error)
	RecordView(cardID uint)
	GetCardsForUserPaginated(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateCard(ctx context.Context, id uint, updatingUserID uint, detailData models.CardDetail, settings CardSettings) error
	DeleteCard(ctx context.Context, id uint, deletingUserID uint) error
	GetCardCountForUser(ctx context.Context, creatorUserID uint) (int64, error)

	// Yönetici görünümü
	GetAllCardsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetCardStats(ctx context.Context) (totalCards int64, totalViews int64, err error)

	// Editör operasyonları
	SelectTemplate(ctx context.Context, id uint, userID uint, templateID string) error
	MoveSection(ctx context.Context, id uint, userID uint, index int, direction string) error
	AddService(ctx context.Context, cardID uint, userID uint, item models.CardService) (*models.CardService, error)
	UpdateService(ctx context.Context, cardID uint, userID uint, itemID string, item models.CardService) error
	RemoveService(ctx context.Context, cardID uint, userID uint, itemID string) error
	AddGalleryImage(ctx context.Context, cardID uint, userID uint, imageURL string) (*models.GalleryImage, error)
	RemoveGalleryImage(ctx context.Context, cardID uint, userID uint, itemID string) error
	SetHourRange(ctx context.Context, cardID uint, userID uint, itemID, open, close string) error
	ToggleHourClosed(ctx context.Context, cardID uint, userID uint, itemID string) error
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo     repositories.ICardRepository
	userRepo repositories.IUserRepository
	db       *gorm.DB // Transaction yönetimi için
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	return NewCardServiceWithDB(configs.GetDB())
}

// NewCardServiceWithDB verilen bağlantı ile çalışan servis oluşturur.
func NewCardServiceWithDB(db *gorm.DB) ICardService {
	return &CardService{
		repo:     repositories.NewCardRepositoryTx(db),
		userRepo: repositories.NewUserRepositoryTx(db),
		db:       db,
	}
}

// --- Yardımcı Metodlar ---

// ValidateCardDetail temel validasyonları yapar.
func ValidateCardDetail(detail models.CardDetail) error {
	if strings.TrimSpace(detail.FullName) == "" {
		return ErrCardNameRequired
	}
	return nil
}

// normalizeCard sırayı kanonikleştirir ve saatleri yedi güne tamamlar.
// Her yazma işlemi öncesi çağrılır; kalıcı kayıtta asla eksik gün veya
// tekrar eden bölüm bulunmaz.
func normalizeCard(card *models.Card) {
	card.NormalizeSectionOrder()
	card.BusinessHours = models.BackfillBusinessHours(card.BusinessHours)
}

// resolveUniqueSlug isimden slug üretir; taken ile çakışma kontrolü
// yapar, çakışmada rastgele sonekle sınırlı sayıda yeniden dener.
func resolveUniqueSlug(fullName string, taken func(slug string) (bool, error)) (string, error) {
	base := utils.Slugify(fullName)
	if base == "" {
		base = "card"
	}
	if len(base) > 40 {
		base = base[:40]
	}

	const maxAttempts = 5
	for i := 0; i < maxAttempts; i++ {
		suffix, err := utils.GenerateSecureRandomString(6)
		if err != nil {
			return "", ErrCardSlugFailed
		}
		candidate := base + "-" + suffix

		exists, err := taken(candidate)
		if err != nil {
			configslog.Log.Error("Slug benzersizlik kontrolü hatası", zap.Error(err))
			return "", ErrCardSlugFailed
		}
		if !exists {
			return candidate, nil
		}
		configslog.Log.Warn("Slug çakışması, yeniden deneniyor...", zap.String("slug", candidate))
	}
	return "", ErrCardSlugFailed
}

func (s *CardService) generateUniqueSlug(tx *gorm.DB, fullName string) (string, error) {
	return resolveUniqueSlug(fullName, func(slug string) (bool, error) {
		var count int64
		err := tx.Model(&models.Card{}).Where("slug = ?", slug).Count(&count).Error
		return count > 0, err
	})
}

// loadCardForUpdate kaydı kilitli alır ve sahiplik kontrolü yapar.
// Yönetici tüm kartlara erişebilir.
func loadCardForUpdate(tx *gorm.DB, ctx context.Context, cardID, userID uint) (*models.Card, error) {
	var card models.Card
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&card, cardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	user, err := repositories.NewUserRepositoryTx(tx).FindByID(ctx, userID)
	if err != nil {
		return nil, ErrCardForbidden
	}
	if !user.IsAdmin() && card.CreatorUserID != userID {
		configslog.Log.Warn("Yetkisiz kartvizit erişim denemesi",
			zap.Uint("cardID", cardID), zap.Uint("userID", userID), zap.Uint("ownerID", card.CreatorUserID))
		return nil, ErrCardForbidden
	}
	return &card, nil
}

// --- Servis Metodları ---

// CreateCard varsayılanlarla yeni bir kartvizit oluşturur; verilen
// detay alanları varsayılanların üzerine yazılır. Slug üretimi ve tüm
// kayıtlar tek transaction içinde tamamlanır.
func (s *CardService) CreateCard(ctx context.Context, creatorUserID uint, detailData models.CardDetail) (*models.Card, error) {
	if err := ValidateCardDetail(detailData); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
	}
	if creatorUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz oluşturan kullanıcı ID", ErrCrdInvalidInput)
	}

	card := models.NewDefaultCard(creatorUserID)
	applyDetail(&card.Detail, detailData)
	normalizeCard(&card)

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, creatorUserID)

		slug, err := s.generateUniqueSlug(tx, card.Detail.FullName)
		if err != nil {
			return err
		}
		card.Slug = slug

		if err := repositories.NewCardRepositoryTx(tx).CreateCard(txCtx, &card); err != nil {
			configslog.Log.Error("Kartvizit oluşturulurken transaction hatası", zap.Error(err))
			return ErrCardCreationFailed
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Kartvizit başarıyla oluşturuldu: ID %d, Slug: %s", card.ID, card.Slug)
	return &card, nil
}

// applyDetail boş olmayan detay alanlarını hedefe kopyalar; boş alanlar
// varsayılanları korur (yeni kart formu kısmi doldurulabilir).
func applyDetail(dst *models.CardDetail, src models.CardDetail) {
	if src.FullName != "" {
		dst.FullName = src.FullName
	}
	if src.JobTitle != "" {
		dst.JobTitle = src.JobTitle
	}
	if src.CompanyName != "" {
		dst.CompanyName = src.CompanyName
	}
	if src.Bio != "" {
		dst.Bio = src.Bio
	}
	if src.AboutTitle != "" {
		dst.AboutTitle = src.AboutTitle
	}
	if src.AboutText != "" {
		dst.AboutText = src.AboutText
	}
	if src.ProfileImageURL != "" {
		dst.ProfileImageURL = src.ProfileImageURL
	}
	if src.BannerImageURL != "" {
		dst.BannerImageURL = src.BannerImageURL
	}
	if src.LogoImageURL != "" {
		dst.LogoImageURL = src.LogoImageURL
	}
	if src.Socials != (models.SocialLinks{}) {
		dst.Socials = src.Socials
	}
	if len(src.Tags) > 0 {
		dst.Tags = src.Tags
	}
}

// GetCardByID belirli bir kartviziti ID ve kullanıcı yetkisine göre getirir.
func (s *CardService) GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error) {
	card, err := s.repo.GetCardByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardByID: repo hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	requestingUser, userErr := s.userRepo.FindByID(ctx, requestingUserID)
	if userErr != nil {
		configslog.Log.Error("GetCardByID yetki kontrolü: kullanıcı bulunamadı",
			zap.Uint("userID", requestingUserID), zap.Error(userErr))
		return nil, ErrCardForbidden
	}
	if !requestingUser.IsAdmin() && card.CreatorUserID != requestingUserID {
		configslog.Log.Warn("Yetkisiz kartvizit erişim denemesi",
			zap.Uint("cardID", id), zap.Uint("userID", requestingUserID), zap.Uint("ownerID", card.CreatorUserID))
		return nil, ErrCardForbidden
	}

	normalizeCard(card)
	return card, nil
}

// GetPublicCard public sayfa için kartviziti slug (veya sayısal ID)
// ile getirir. Pasif kartlar "bulunamadı" sayılır; yetki aranmaz.
func (s *CardService) GetPublicCard(ctx context.Context, slugOrID string) (*models.Card, error) {
	slugOrID = strings.TrimSpace(slugOrID)
	if slugOrID == "" {
		return nil, ErrCardNotFound
	}

	card, err := s.repo.GetCardBySlug(slugOrID)
	if errors.Is(err, repositories.ErrNotFound) {
		// Slug bulunamadıysa sayısal ID olarak dene (eski paylaşım linkleri).
		if id, convErr := strconv.ParseUint(slugOrID, 10, 64); convErr == nil {
			card, err = s.repo.GetCardByID(uint(id))
		}
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetPublicCard: repo hatası", zap.String("key", slugOrID), zap.Error(err))
		return nil, err
	}

	if !card.IsEnabled {
		configslog.Log.Info("Pasif kartvizit erişim denemesi", zap.String("key", slugOrID), zap.Uint("cardID", card.ID))
		return nil, ErrCardNotFound
	}

	normalizeCard(card)
	return card, nil
}

// RecordView görüntülenme sayacını best-effort artırır. Hata sadece
// loglanır; public render hiçbir koşulda bloklanmaz.
func (s *CardService) RecordView(cardID uint) {
	if err := s.repo.IncrementViews(cardID); err != nil {
		configslog.Log.Warn("Görüntülenme sayacı artırılamadı", zap.Uint("cardID", cardID), zap.Error(err))
	}
}

// GetCardsForUserPaginated kullanıcıya ait kartvizitleri sayfalayarak getirir.
func (s *CardService) GetCardsForUserPaginated(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if creatorUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrCrdInvalidInput)
	}
	params.Validate()

	cards, totalCount, err := s.repo.FindAllByUserIDPaginated(creatorUserID, params)
	if err != nil {
		configslog.Log.Error("Kullanıcı kartvizitleri alınırken hata", zap.Uint("creatorUserID", creatorUserID), zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdateCard mevcut bir kartviziti ve detaylarını günceller. Detay tam
// üzerine yazılır (kısmi güncelleme semantiği yoktur).
func (s *CardService) UpdateCard(ctx context.Context, id uint, updatingUserID uint, detailData models.CardDetail, settings CardSettings) error {
	if err := ValidateCardDetail(detailData); err != nil {
		return fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
	}
	if id == 0 || updatingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya güncelleyen kullanıcı ID", ErrCrdInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, updatingUserID)
		repoTx := repositories.NewCardRepositoryTx(tx)

		existingCard, err := loadCardForUpdate(tx, txCtx, id, updatingUserID)
		if err != nil {
			return err
		}

		var existingDetail models.CardDetail
		if err := tx.Where("card_id = ?", id).First(&existingDetail).Error; err != nil {
			configslog.Log.Error("UpdateCard: detay kaydı bulunamadı", zap.Uint("id", id), zap.Error(err))
			return ErrCardUpdateFailed
		}

		// Ana model alanları
		existingCard.IsEnabled = settings.IsEnabled
		existingCard.ShowMap = settings.ShowMap
		existingCard.CustomMapURL = settings.CustomMapURL
		if settings.PrimaryColor != "" {
			existingCard.PrimaryColor = settings.PrimaryColor
		}
		existingCard.NormalizeSectionOrder()

		// Detay alanları: tam kopya, save her şeyi değiştirir.
		existingDetail.FullName = detailData.FullName
		existingDetail.JobTitle = detailData.JobTitle
		existingDetail.CompanyName = detailData.CompanyName
		existingDetail.Bio = detailData.Bio
		existingDetail.AboutTitle = detailData.AboutTitle
		existingDetail.AboutText = detailData.AboutText
		existingDetail.ProfileImageURL = detailData.ProfileImageURL
		existingDetail.BannerImageURL = detailData.BannerImageURL
		existingDetail.LogoImageURL = detailData.LogoImageURL
		existingDetail.Socials = detailData.Socials
		existingDetail.Tags = detailData.Tags

		if err := repoTx.SaveDetail(txCtx, &existingDetail); err != nil {
			configslog.Log.Error("Kartvizit detayı güncellenirken transaction hatası", zap.Uint("detailID", existingDetail.ID), zap.Error(err))
			return ErrCardUpdateFailed
		}
		if err := repoTx.SaveCard(txCtx, existingCard); err != nil {
			configslog.Log.Error("Kartvizit ana bilgisi güncellenirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrCardUpdateFailed
		}

		// Saat kayıtları her günü tam bir kez kapsamıyorsa onar: sayı
		// tutsa bile tekrar eden gün eksik gün demektir.
		var hours []models.BusinessHour
		if err := tx.Where("card_id = ?", id).Find(&hours).Error; err != nil {
			return ErrCardUpdateFailed
		}
		if !models.HoursCoverWeek(hours) {
			if err := repoTx.ReplaceHours(txCtx, id, models.BackfillBusinessHours(hours)); err != nil {
				configslog.Log.Error("Çalışma saatleri tamamlanırken hata", zap.Uint("id", id), zap.Error(err))
				return ErrCardUpdateFailed
			}
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	configslog.SLog.Infof("Kartvizit başarıyla güncellendi: ID %d", id)
	return nil
}

// DeleteCard bir kartviziti ve tüm alt kayıtlarını siler.
func (s *CardService) DeleteCard(ctx context.Context, id uint, deletingUserID uint) error {
	if id == 0 || deletingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya silen kullanıcı ID", ErrCrdInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, deletingUserID)

		if _, err := loadCardForUpdate(tx, txCtx, id, deletingUserID); err != nil {
			return err
		}

		if err := repositories.NewCardRepositoryTx(tx).DeleteCard(txCtx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("Kartvizit silinirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrCardDeletionFailed
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	configslog.SLog.Infof("Kartvizit başarıyla silindi: ID %d", id)
	return nil
}

// GetCardCountForUser kullanıcıya ait kartvizit sayısını alır.
func (s *CardService) GetCardCountForUser(ctx context.Context, creatorUserID uint) (int64, error) {
	count, err := s.repo.CountByUserID(creatorUserID)
	if err != nil {
		configslog.Log.Error("Kullanıcı kartvizit sayısı alınırken hata", zap.Uint("creatorUserID", creatorUserID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// GetAllCardsPaginated yönetici görünümü için tüm kartvizitleri listeler.
func (s *CardService) GetAllCardsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	cards, totalCount, err := s.repo.FindAllPaginated(params)
	if err != nil {
		configslog.Log.Error("Tüm kartvizitler alınırken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// GetCardStats yönetici ana sayfası için toplam kart ve görüntülenme sayısı.
func (s *CardService) GetCardStats(ctx context.Context) (int64, int64, error) {
	totalCards, err := s.repo.CountAll()
	if err != nil {
		return 0, 0, err
	}
	totalViews, err := s.repo.SumViews()
	if err != nil {
		return 0, 0, err
	}
	return totalCards, totalViews, nil
}

// --- Editör Operasyonları ---

// applyTemplateSelection seçim kararını karta uygular. Bilinmeyen veya
// kilitli şablonda kart DEĞİŞTİRİLMEZ; TemplateID yalnızca seçim
// geçerliyse yazılır.
func applyTemplateSelection(card *models.Card, templateID, tier string) error {
	if !cardview.IsKnownTemplate(templateID) {
		return ErrTemplateUnknown
	}
	if cardview.IsLocked(templateID, tier) {
		return ErrTemplateLocked
	}
	card.TemplateID = templateID
	return nil
}

// SelectTemplate şablon seçimini uygular. Kilitli şablon seçiminde kart
// DEĞİŞTİRİLMEZ ve ErrTemplateLocked döner; çağıran upgrade akışını gösterir.
func (s *CardService) SelectTemplate(ctx context.Context, id uint, userID uint, templateID string) error {
	if !cardview.IsKnownTemplate(templateID) {
		return ErrTemplateUnknown
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		card, err := loadCardForUpdate(tx, txCtx, id, userID)
		if err != nil {
			return err
		}

		user, err := repositories.NewUserRepositoryTx(tx).FindByID(txCtx, userID)
		if err != nil {
			return ErrCardForbidden
		}
		if err := applyTemplateSelection(card, templateID, user.Subscription); err != nil {
			if errors.Is(err, ErrTemplateLocked) {
				configslog.SLog.Infof("Kilitli şablon seçim denemesi: %s (kullanıcı %d, kademe %s)", templateID, userID, user.Subscription)
			}
			return err
		}

		if err := repositories.NewCardRepositoryTx(tx).SaveCard(txCtx, card); err != nil {
			configslog.Log.Error("Şablon seçimi kaydedilemedi", zap.Uint("id", id), zap.Error(err))
			return ErrCardUpdateFailed
		}
		return nil
	})
}

// MoveSection bölümü verilen yönde bir konum taşır. Sınırda no-op'tur
// ve hata dönmez; editör butonları zaten sınırda pasifleşir.
func (s *CardService) MoveSection(ctx context.Context, id uint, userID uint, index int, direction string) error {
	if direction != "up" && direction != "down" {
		return fmt.Errorf("%w: geçersiz yön %q", ErrCrdInvalidInput, direction)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		card, err := loadCardForUpdate(tx, txCtx, id, userID)
		if err != nil {
			return err
		}

		card.NormalizeSectionOrder()
		if !card.MoveSection(index, direction) {
			// Sınırda taşıma: kayıt değişmedi, sessizce başarılı say.
			return nil
		}
		if err := repositories.NewCardRepositoryTx(tx).SaveCard(txCtx, card); err != nil {
			configslog.Log.Error("Bölüm sırası kaydedilemedi", zap.Uint("id", id), zap.Error(err))
			return ErrCardUpdateFailed
		}
		return nil
	})
}

// AddService yeni hizmet kalemini listenin sonuna ekler.
func (s *CardService) AddService(ctx context.Context, cardID uint, userID uint, item models.CardService) (*models.CardService, error) {
	if strings.TrimSpace(item.Title) == "" {
		return nil, fmt.Errorf("%w: hizmet başlığı zorunludur", ErrCrdInvalidInput)
	}

	var created *models.CardService
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		if _, err := loadCardForUpdate(tx, txCtx, cardID, userID); err != nil {
			return err
		}

		repoTx := repositories.NewCardRepositoryTx(tx)
		maxPos, err := repoTx.MaxServicePosition(cardID)
		if err != nil {
			return ErrCardUpdateFailed
		}

		newItem := models.CardService{
			CardID:      cardID,
			ItemID:      uuid.NewString(),
			Title:       item.Title,
			Description: item.Description,
			Price:       item.Price,
			Position:    maxPos + 1,
		}
		if err := repoTx.CreateService(txCtx, &newItem); err != nil {
			configslog.Log.Error("Hizmet kalemi eklenemedi", zap.Uint("cardID", cardID), zap.Error(err))
			return ErrCardUpdateFailed
		}
		created = &newItem
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return created, nil
}

// UpdateService kimliği eşleşen hizmet kaleminin alanlarını günceller.
func (s *CardService) UpdateService(ctx context.Context, cardID uint, userID uint, itemID string, item models.CardService) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: hizmet başlığı zorunludur", ErrCrdInvalidInput)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		if _, err := loadCardForUpdate(tx, txCtx, cardID, userID); err != nil {
			return err
		}

		repoTx := repositories.NewCardRepositoryTx(tx)
		existing, err := repoTx.FindServiceByItemID(cardID, itemID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardItemNotFound
			}
			return err
		}

		existing.Title = item.Title
		existing.Description = item.Description
		existing.Price = item.Price
		if err := repoTx.SaveService(txCtx, existing); err != nil {
			configslog.Log.Error("Hizmet kalemi güncellenemedi", zap.Uint("cardID", cardID), zap.String("itemID", itemID), zap.Error(err))
			return ErrCardUpdateFailed
		}
		return nil
	})
}

// RemoveService kimliği eşleşen hizmet kalemini siler.
func (s *CardService) RemoveService(ctx context.Context, cardID uint, userID uint, itemID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		if _, err := loadCardForUpdate(tx, txCtx, cardID, userID); err != nil {
			return err
		}

		if err := repositories.NewCardRepositoryTx(tx).DeleteServiceByItemID(txCtx, cardID, itemID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardItemNotFound
			}
			return ErrCardUpdateFailed
		}
		return nil
	})
}

// AddGalleryImage galeri sonuna görsel ekler.
func (s *CardService) AddGalleryImage(ctx context.Context, cardID uint, userID uint, imageURL string) (*models.GalleryImage, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, ErrGalleryImageRequired
	}

	var created *models.GalleryImage
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		if _, err := loadCardForUpdate(tx, txCtx, cardID, userID); err != nil {
			return err
		}

		repoTx := repositories.NewCardRepositoryTx(tx)
		maxPos, err := repoTx.MaxGalleryPosition(cardID)
		if err != nil {
			return ErrCardUpdateFailed
		}

		image := models.GalleryImage{
			CardID:   cardID,
			ItemID:   uuid.NewString(),
			ImageURL: imageURL,
			Position: maxPos + 1,
		}
		if err := repoTx.CreateGalleryImage(txCtx, &image); err != nil {
			configslog.Log.Error("Galeri görseli eklenemedi", zap.Uint("cardID", cardID), zap.Error(err))
			return ErrCardUpdateFailed
		}
		created = &image
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return created, nil
}

// RemoveGalleryImage kimliği eşleşen galeri görselini siler.
func (s *CardService) RemoveGalleryImage(ctx context.Context, cardID uint, userID uint, itemID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		if _, err := loadCardForUpdate(tx, txCtx, cardID, userID); err != nil {
			return err
		}

		if err := repositories.NewCardRepositoryTx(tx).DeleteGalleryImageByItemID(txCtx, cardID, itemID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardItemNotFound
			}
			return ErrCardUpdateFailed
		}
		return nil
	})
}

// SetHourRange yalnızca kimliği eşleşen günün açılış/kapanış saatini
// değiştirir; diğer günlere dokunulmaz.
func (s *CardService) SetHourRange(ctx context.Context, cardID uint, userID uint, itemID, open, close string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		if _, err := loadCardForUpdate(tx, txCtx, cardID, userID); err != nil {
			return err
		}

		repoTx := repositories.NewCardRepositoryTx(tx)
		hour, err := repoTx.FindHourByItemID(cardID, itemID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrHourEntryNotFound
			}
			return err
		}

		hour.Open = open
		hour.Close = close
		if err := repoTx.SaveHour(txCtx, hour); err != nil {
			configslog.Log.Error("Çalışma saati güncellenemedi", zap.Uint("cardID", cardID), zap.String("itemID", itemID), zap.Error(err))
			return ErrCardUpdateFailed
		}
		return nil
	})
}

// ToggleHourClosed kimliği eşleşen günün kapalı/açık durumunu çevirir.
func (s *CardService) ToggleHourClosed(ctx context.Context, cardID uint, userID uint, itemID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		if _, err := loadCardForUpdate(tx, txCtx, cardID, userID); err != nil {
			return err
		}

		repoTx := repositories.NewCardRepositoryTx(tx)
		hour, err := repoTx.FindHourByItemID(cardID, itemID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrHourEntryNotFound
			}
			return err
		}

		hour.IsClosed = !hour.IsClosed
		if err := repoTx.SaveHour(txCtx, hour); err != nil {
			configslog.Log.Error("Çalışma saati durumu değiştirilemedi", zap.Uint("cardID", cardID), zap.String("itemID", itemID), zap.Error(err))
			return ErrCardUpdateFailed
		}
		return nil
	})
}

var _ ICardService = (*CardService)(nil)

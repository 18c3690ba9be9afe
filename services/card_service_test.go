package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"digicard.pro/models"
	"digicard.pro/models/helpers"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newCardTestDB her test için izole bir in-memory veritabanı açar.
func newCardTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Card{},
		&models.CardDetail{},
		&models.CardService{},
		&models.BusinessHour{},
		&models.GalleryImage{},
	))
	return db
}

func seedTestUser(t *testing.T, db *gorm.DB, role, subscription string) *models.User {
	t.Helper()
	user := models.User{
		Name:         "Test Kullanıcı",
		Email:        fmt.Sprintf("%s-%s@example.com", strings.ToLower(role), strings.ReplaceAll(strings.ToLower(t.Name()), "/", "-")),
		PasswordHash: "hash",
		Role:         role,
		Subscription: subscription,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestCardService_CreateCard_RoundTrip(t *testing.T) {
	db := newCardTestDB(t)
	user := seedTestUser(t, db, models.RoleUser, models.SubscriptionFree)
	svc := NewCardServiceWithDB(db)
	ctx := context.Background()

	created, err := svc.CreateCard(ctx, user.ID, models.CardDetail{
		FullName:    "Jane Doe",
		JobTitle:    "Mimar",
		CompanyName: "Doe Mimarlık",
		AboutText:   "Yirmi yıllık tecrübe.",
		Socials:     models.SocialLinks{Email: "jane@example.com", Phone: "+905551112233"},
		Tags:        helpers.StringArray{"mimari", "tasarım"},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.True(t, strings.HasPrefix(created.Slug, "jane-doe-"), "slug: %s", created.Slug)

	// Kaydet-yükle turunda alanlar aynen geri gelmeli.
	reloaded, err := svc.GetCardByID(ctx, created.ID, user.ID)
	require.NoError(t, err)

	assert.Equal(t, created.Slug, reloaded.Slug)
	assert.Equal(t, models.TemplateDefault, reloaded.TemplateID)
	assert.True(t, reloaded.IsEnabled)
	assert.Equal(t, "Jane Doe", reloaded.Detail.FullName)
	assert.Equal(t, "Mimar", reloaded.Detail.JobTitle)
	assert.Equal(t, "Doe Mimarlık", reloaded.Detail.CompanyName)
	assert.Equal(t, "Yirmi yıllık tecrübe.", reloaded.Detail.AboutText)
	assert.Equal(t, "jane@example.com", reloaded.Detail.Socials.Email)
	assert.Equal(t, "+905551112233", reloaded.Detail.Socials.Phone)
	assert.Equal(t, []string{"mimari", "tasarım"}, []string(reloaded.Detail.Tags))
	assert.Equal(t, []string(models.DefaultSectionOrder), []string(reloaded.SectionOrder))
	assert.True(t, models.HoursCoverWeek(reloaded.BusinessHours))
}

func TestCardService_CreateCard_SlugsUnique(t *testing.T) {
	db := newCardTestDB(t)
	user := seedTestUser(t, db, models.RoleUser, models.SubscriptionFree)
	svc := NewCardServiceWithDB(db)
	ctx := context.Background()

	first, err := svc.CreateCard(ctx, user.ID, models.CardDetail{FullName: "Jane Doe"})
	require.NoError(t, err)
	second, err := svc.CreateCard(ctx, user.ID, models.CardDetail{FullName: "Jane Doe"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "jane-doe-"))
}

func TestCardService_GetCardByID_Authorization(t *testing.T) {
	db := newCardTestDB(t)
	owner := seedTestUser(t, db, models.RoleUser, models.SubscriptionFree)
	svc := NewCardServiceWithDB(db)
	ctx := context.Background()

	card, err := svc.CreateCard(ctx, owner.ID, models.CardDetail{FullName: "Jane Doe"})
	require.NoError(t, err)

	t.Run("başka kullanıcı erişemez", func(t *testing.T) {
		other := seedTestUser(t, db, models.RoleUser, models.SubscriptionFree)
		_, err := svc.GetCardByID(ctx, card.ID, other.ID)
		assert.ErrorIs(t, err, ErrCardForbidden)
	})

	t.Run("yönetici her kartı görebilir", func(t *testing.T) {
		admin := seedTestUser(t, db, models.RoleAdmin, models.SubscriptionProLifetime)
		got, err := svc.GetCardByID(ctx, card.ID, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, card.ID, got.ID)
	})
}

func TestCardService_GetPublicCard(t *testing.T) {
	db := newCardTestDB(t)
	user := seedTestUser(t, db, models.RoleUser, models.SubscriptionFree)
	svc := NewCardServiceWithDB(db)
	ctx := context.Background()

	card, err := svc.CreateCard(ctx, user.ID, models.CardDetail{FullName: "Jane Doe"})
	require.NoError(t, err)

	t.Run("slug ile bulunur", func(t *testing.T) {
		got, err := svc.GetPublicCard(ctx, card.Slug)
		require.NoError(t, err)
		assert.Equal(t, card.ID, got.ID)
	})

	t.Run("sayısal ID ile bulunur", func(t *testing.T) {
		got, err := svc.GetPublicCard(ctx, fmt.Sprint(card.ID))
		require.NoError(t, err)
		assert.Equal(t, card.Slug, got.Slug)
	})

	t.Run("bilinmeyen anahtar bulunamadı döner", func(t *testing.T) {
		_, err := svc.GetPublicCard(ctx, "boyle-bir-kart-yok")
		assert.ErrorIs(t, err, ErrCardNotFound)
	})

	t.Run("pasif kart bulunamadı sayılır", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Card{}).Where("id = ?", card.ID).Update("is_enabled", false).Error)
		_, err := svc.GetPublicCard(ctx, card.Slug)
		assert.ErrorIs(t, err, ErrCardNotFound)
	})
}

func TestCardService_RecordView(t *testing.T) {
	db := newCardTestDB(t)
	user := seedTestUser(t, db, models.RoleUser, models.SubscriptionFree)
	svc := NewCardServiceWithDB(db)
	ctx := context.Background()

	card, err := svc.CreateCard(ctx, user.ID, models.CardDetail{FullName: "Jane Doe"})
	require.NoError(t, err)

	svc.RecordView(card.ID)
	svc.RecordView(card.ID)

	var reloaded models.Card
	require.NoError(t, db.First(&reloaded, card.ID).Error)
	assert.Equal(t, int64(2), reloaded.Views)
}

func TestResolveUniqueSlug(t *testing.T) {
	t.Run("çakışmada yeni sonekle yeniden dener", func(t *testing.T) {
		var attempts []string
		slug, err := resolveUniqueSlug("Jane Doe", func(candidate string) (bool, error) {
			attempts = append(attempts, candidate)
			return len(attempts) < 3, nil // ilk iki aday dolu
		})
		require.NoError(t, err)
		assert.Len(t, attempts, 3)
		assert.Equal(t, attempts[2], slug)
		assert.True(t, strings.HasPrefix(slug, "jane-doe-"))
		assert.NotEqual(t, attempts[0], attempts[1])
	})

	t.Run("sürekli çakışma sınırlı denemeden sonra hata döner", func(t *testing.T) {
		attempts := 0
		_, err := resolveUniqueSlug("Jane Doe", func(string) (bool, error) {
			attempts++
			return true, nil
		})
		assert.ErrorIs(t, err, ErrCardSlugFailed)
		assert.Equal(t, 5, attempts)
	})

	t.Run("boş isim card tabanına düşer", func(t *testing.T) {
		slug, err := resolveUniqueSlug("   ", func(string) (bool, error) { return false, nil })
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(slug, "card-"))
	})

	t.Run("uzun isim kırpılır", func(t *testing.T) {
		slug, err := resolveUniqueSlug(strings.Repeat("a", 80), func(string) (bool, error) { return false, nil })
		require.NoError(t, err)
		// 40 karakter taban + tire + 6 karakter sonek
		assert.Len(t, slug, 47)
	})
}

func TestApplyTemplateSelection(t *testing.T) {
	t.Run("kilitli şablon seçimi kartı değiştirmez", func(t *testing.T) {
		card := models.NewDefaultCard(1)
		err := applyTemplateSelection(&card, "luxe", models.SubscriptionFree)
		assert.ErrorIs(t, err, ErrTemplateLocked)
		assert.Equal(t, models.TemplateDefault, card.TemplateID)
	})

	t.Run("bilinmeyen şablon kartı değiştirmez", func(t *testing.T) {
		card := models.NewDefaultCard(1)
		card.TemplateID = "modern"
		err := applyTemplateSelection(&card, "sparkle", models.SubscriptionProLifetime)
		assert.ErrorIs(t, err, ErrTemplateUnknown)
		assert.Equal(t, "modern", card.TemplateID)
	})

	t.Run("ücretsiz şablon herkese açık", func(t *testing.T) {
		card := models.NewDefaultCard(1)
		require.NoError(t, applyTemplateSelection(&card, "dark", models.SubscriptionFree))
		assert.Equal(t, "dark", card.TemplateID)
	})

	t.Run("premium şablon pro kademede açılır", func(t *testing.T) {
		card := models.NewDefaultCard(1)
		require.NoError(t, applyTemplateSelection(&card, "luxe", models.SubscriptionProMonthly))
		assert.Equal(t, "luxe", card.TemplateID)
	})
}

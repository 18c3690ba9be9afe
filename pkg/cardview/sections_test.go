package cardview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digicard.pro/models"
)

func fixedClock(weekday time.Weekday) func() time.Time {
	// 5 Ocak 2026 Pazartesi; istenen güne kaydır.
	base := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	offset := int(weekday - time.Monday)
	if offset < 0 {
		offset += 7
	}
	return func() time.Time { return base.AddDate(0, 0, offset) }
}

func TestHasContent(t *testing.T) {
	reg := NewSectionRegistry()

	t.Run("about sadece dolu metinle", func(t *testing.T) {
		card := &models.Card{}
		assert.False(t, reg.HasContent(models.SectionAbout, card))

		card.Detail.AboutText = "   \n  "
		assert.False(t, reg.HasContent(models.SectionAbout, card))

		card.Detail.AboutText = "Merhaba"
		assert.True(t, reg.HasContent(models.SectionAbout, card))
	})

	t.Run("listeli bölümler boş listeyle gizli", func(t *testing.T) {
		card := &models.Card{}
		assert.False(t, reg.HasContent(models.SectionServices, card))
		assert.False(t, reg.HasContent(models.SectionGallery, card))
		assert.False(t, reg.HasContent(models.SectionHours, card))

		card.Services = []models.CardService{{Title: "Danışmanlık"}}
		card.Gallery = []models.GalleryImage{{ImageURL: "https://example.com/a.jpg"}}
		card.BusinessHours = models.DefaultBusinessHours()
		assert.True(t, reg.HasContent(models.SectionServices, card))
		assert.True(t, reg.HasContent(models.SectionGallery, card))
		assert.True(t, reg.HasContent(models.SectionHours, card))
	})

	t.Run("harita ShowMap ve adres ister", func(t *testing.T) {
		card := &models.Card{ShowMap: true}
		assert.False(t, reg.HasContent(models.SectionMap, card))

		card.Detail.Socials.Address = "İstanbul"
		assert.True(t, reg.HasContent(models.SectionMap, card))

		card.ShowMap = false
		assert.False(t, reg.HasContent(models.SectionMap, card))
	})

	t.Run("bilinmeyen bölüm içerik yok sayılır", func(t *testing.T) {
		card := &models.Card{}
		card.Detail.AboutText = "dolu"
		assert.False(t, reg.HasContent("videos", card))
	})
}

func TestRenderAboutSplitsParagraphs(t *testing.T) {
	reg := NewSectionRegistry()
	card := &models.Card{}
	card.Detail.AboutTitle = "Hakkımızda"
	card.Detail.AboutText = "İlk paragraf.\n\n  İkinci paragraf.  \n"

	block, ok := reg.Render(models.SectionAbout, card)
	require.True(t, ok)
	assert.Equal(t, "Hakkımızda", block.Title)
	assert.Equal(t, []string{"İlk paragraf.", "İkinci paragraf."}, block.Body)
}

func TestRenderAboutDefaultTitle(t *testing.T) {
	reg := NewSectionRegistry()
	card := &models.Card{}
	card.Detail.AboutText = "metin"

	block, ok := reg.Render(models.SectionAbout, card)
	require.True(t, ok)
	assert.Equal(t, "About", block.Title)
}

func TestRenderHoursMarksToday(t *testing.T) {
	reg := NewSectionRegistry()
	reg.Now = fixedClock(time.Wednesday)

	card := &models.Card{BusinessHours: models.DefaultBusinessHours()}
	block, ok := reg.Render(models.SectionHours, card)
	require.True(t, ok)
	require.Len(t, block.Hours, 7)

	for _, line := range block.Hours {
		assert.Equal(t, line.Day == "Wednesday", line.IsToday, line.Day)
	}
}

func TestRenderMapUsesCustomURL(t *testing.T) {
	reg := NewSectionRegistry()
	card := &models.Card{ShowMap: true, CustomMapURL: "https://example.com/embed"}
	card.Detail.Socials.Address = "Kadıköy, İstanbul"

	block, ok := reg.Render(models.SectionMap, card)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/embed", block.MapEmbedURL)
	assert.Equal(t, "Kadıköy, İstanbul", block.MapAddress)
}

func TestRenderServicesPreservesOrderAndFields(t *testing.T) {
	reg := NewSectionRegistry()
	card := &models.Card{
		Services: []models.CardService{
			{ItemID: "a", Title: "Web Tasarım", Description: "Kurumsal site", Price: "5000 TL"},
			{ItemID: "b", Title: "SEO"},
		},
	}

	block, ok := reg.Render(models.SectionServices, card)
	require.True(t, ok)
	require.Len(t, block.Items, 2)
	assert.Equal(t, "a", block.Items[0].ItemID)
	assert.Equal(t, "Web Tasarım", block.Items[0].Title)
	assert.Equal(t, "5000 TL", block.Items[0].Price)
	assert.Equal(t, "b", block.Items[1].ItemID)
}

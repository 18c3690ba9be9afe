package cardview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digicard.pro/models"
	"digicard.pro/models/helpers"
)

func testCatalog() *Catalog {
	return NewCatalog(NewSectionRegistry())
}

func fullCard() *models.Card {
	card := models.NewDefaultCard(1)
	card.Detail.AboutText = "Uzun yıllardır bu işi yapıyoruz."
	card.Detail.Socials.Phone = "+905551112233"
	card.Detail.Socials.Email = "info@example.com"
	card.Detail.Socials.Address = "Beşiktaş, İstanbul"
	card.Services = []models.CardService{{ItemID: "s1", Title: "Danışmanlık"}}
	card.Gallery = []models.GalleryImage{{ItemID: "g1", ImageURL: "https://example.com/1.jpg"}}
	return &card
}

func TestCatalogHasAllTemplates(t *testing.T) {
	catalog := testCatalog()
	require.Len(t, AllTemplateIDs, 21)
	for _, id := range AllTemplateIDs {
		assert.True(t, catalog.Has(id), id)
	}
	assert.False(t, catalog.Has("nonexistent"))
}

func TestRenderUnknownTemplateFallsBackToMinimal(t *testing.T) {
	catalog := testCatalog()
	card := fullCard()

	fallback := catalog.Render("does-not-exist", card)
	minimal := catalog.Render(models.TemplateDefault, card)

	assert.Equal(t, minimal, fallback)
	assert.Equal(t, "minimal", fallback.TemplateID)
}

func TestRenderSkipsEmptySections(t *testing.T) {
	catalog := testCatalog()
	card := fullCard()
	card.Services = nil
	card.Gallery = nil

	page := catalog.Render("minimal", card)

	ids := make([]string, 0, len(page.Blocks))
	for _, b := range page.Blocks {
		ids = append(ids, b.SectionID)
	}
	assert.Equal(t, []string{"about", "hours", "map"}, ids)
}

func TestRenderRespectsSectionOrder(t *testing.T) {
	catalog := testCatalog()
	card := fullCard()
	card.SectionOrder = helpers.StringArray{"map", "about", "services", "gallery", "hours"}

	page := catalog.Render("minimal", card)

	require.NotEmpty(t, page.Blocks)
	assert.Equal(t, "map", page.Blocks[0].SectionID)
	assert.Equal(t, "about", page.Blocks[1].SectionID)
}

func TestRenderNormalizesCorruptOrder(t *testing.T) {
	catalog := testCatalog()
	card := fullCard()
	// Tekrarlı ve bilinmeyen kimlikler: tek render, ilk konumda.
	card.SectionOrder = helpers.StringArray{"about", "about", "bogus", "map"}

	page := catalog.Render("minimal", card)

	seen := map[string]int{}
	for _, b := range page.Blocks {
		seen[b.SectionID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, id)
	}
	assert.NotContains(t, seen, "bogus")
}

func TestRenderSkinFlags(t *testing.T) {
	catalog := testCatalog()
	card := fullCard()

	assert.False(t, catalog.Render("minimal", card).DarkMode)
	assert.True(t, catalog.Render("dark", card).DarkMode)
	assert.True(t, catalog.Render("cyberpunk", card).DarkMode)
	assert.True(t, catalog.Render("terminal", card).DarkMode)

	assert.True(t, catalog.Render("modern", card).ShowBanner)
	assert.False(t, catalog.Render("minimal", card).ShowBanner)

	// Banner görseli yoksa banner'lı skin bile göstermez.
	card.Detail.BannerImageURL = ""
	assert.False(t, catalog.Render("modern", card).ShowBanner)
}

func TestRenderBuildsActionsOnlyForPresentChannels(t *testing.T) {
	catalog := testCatalog()
	card := fullCard()
	card.Detail.Socials = models.SocialLinks{Phone: "+905551112233"}

	page := catalog.Render("minimal", card)

	require.Len(t, page.Actions, 1)
	assert.Equal(t, "phone", page.Actions[0].Channel)
	assert.Equal(t, "tel:+905551112233", page.Actions[0].Href)
	assert.Empty(t, page.Socials)
}

func TestRenderSocialIconsNormalized(t *testing.T) {
	catalog := testCatalog()
	card := fullCard()
	card.Detail.Socials = models.SocialLinks{
		Website:  "example.com",
		LinkedIn: "https://linkedin.com/in/ayse",
	}

	page := catalog.Render("minimal", card)

	require.Len(t, page.Socials, 2)
	assert.Equal(t, "https://example.com", page.Socials[0].Href)
	assert.Equal(t, "https://linkedin.com/in/ayse", page.Socials[1].Href)
}

func TestRenderCarriesIdentityAndColor(t *testing.T) {
	catalog := testCatalog()
	card := fullCard()
	card.PrimaryColor = "#ff0066"
	card.Detail.FullName = "Ayşe Yılmaz"
	card.Detail.JobTitle = "Mimar"

	page := catalog.Render("luxe", card)

	assert.Equal(t, "#ff0066", page.PrimaryColor)
	assert.Equal(t, "Ayşe Yılmaz", page.FullName)
	assert.Equal(t, "Mimar", page.JobTitle)
	assert.Equal(t, "template-luxe", page.Skin)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digicard.pro/models"
	"digicard.pro/models/helpers"
)

func TestValidateCardDetail(t *testing.T) {
	assert.NoError(t, ValidateCardDetail(models.CardDetail{FullName: "Ayşe Yılmaz"}))
	assert.ErrorIs(t, ValidateCardDetail(models.CardDetail{}), ErrCardNameRequired)
	assert.ErrorIs(t, ValidateCardDetail(models.CardDetail{FullName: "   "}), ErrCardNameRequired)
}

func TestApplyDetail(t *testing.T) {
	card := models.NewDefaultCard(1)

	applyDetail(&card.Detail, models.CardDetail{FullName: "Ayşe Yılmaz", JobTitle: "Mimar"})

	assert.Equal(t, "Ayşe Yılmaz", card.Detail.FullName)
	assert.Equal(t, "Mimar", card.Detail.JobTitle)
	// Boş bırakılan alanlar varsayılanlarını korur.
	assert.Equal(t, "Your Company", card.Detail.CompanyName)
	assert.NotEmpty(t, card.Detail.Bio)
}

func TestNormalizeCard(t *testing.T) {
	card := models.NewDefaultCard(1)
	card.SectionOrder = helpers.StringArray{"map", "map", "bogus"}
	card.BusinessHours = card.BusinessHours[:2]

	normalizeCard(&card)

	assert.Equal(t, []string{"map", "about", "services", "gallery", "hours"}, []string(card.SectionOrder))
	assert.Len(t, card.BusinessHours, 7)
}

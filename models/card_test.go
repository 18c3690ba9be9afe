package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digicard.pro/models/helpers"
)

func TestNewDefaultCard(t *testing.T) {
	card := NewDefaultCard(42)

	assert.Equal(t, uint(42), card.CreatorUserID)
	assert.True(t, card.IsEnabled)
	assert.Equal(t, "minimal", card.TemplateID)
	assert.Equal(t, "#4f46e5", card.PrimaryColor)
	assert.True(t, card.ShowMap)
	assert.Equal(t, []string{"about", "services", "gallery", "hours", "map"}, []string(card.SectionOrder))
	assert.Len(t, card.BusinessHours, 7)
	assert.NotEmpty(t, card.Detail.FullName)
}

func TestNewDefaultCard_WeekendClosed(t *testing.T) {
	card := NewDefaultCard(1)

	for _, h := range card.BusinessHours {
		switch h.Day {
		case "Saturday", "Sunday":
			assert.True(t, h.IsClosed, h.Day)
			assert.Equal(t, "10:00", h.Open)
			assert.Equal(t, "14:00", h.Close)
		default:
			assert.False(t, h.IsClosed, h.Day)
			assert.Equal(t, "09:00", h.Open)
			assert.Equal(t, "17:00", h.Close)
		}
	}
}

func TestNormalizeSectionOrder(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "boş girdi varsayılan sırayı verir",
			input:    nil,
			expected: []string{"about", "services", "gallery", "hours", "map"},
		},
		{
			name:     "geçerli sıra korunur",
			input:    []string{"map", "about", "hours", "services", "gallery"},
			expected: []string{"map", "about", "hours", "services", "gallery"},
		},
		{
			name:     "tekrar edenlerin ilki korunur",
			input:    []string{"about", "services", "about", "gallery", "hours", "map"},
			expected: []string{"about", "services", "gallery", "hours", "map"},
		},
		{
			name:     "bilinmeyenler atılır",
			input:    []string{"about", "videos", "services", "gallery", "hours", "map"},
			expected: []string{"about", "services", "gallery", "hours", "map"},
		},
		{
			name:     "eksikler varsayılan sırayla sona eklenir",
			input:    []string{"map", "about"},
			expected: []string{"map", "about", "services", "gallery", "hours"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeSectionOrder(tc.input))
		})
	}
}

func TestNormalizeSectionOrder_Idempotent(t *testing.T) {
	once := NormalizeSectionOrder([]string{"hours", "hours", "bogus", "map"})
	twice := NormalizeSectionOrder(once)
	assert.Equal(t, once, twice)
}

func TestMoveSection(t *testing.T) {
	newCard := func() *Card {
		return &Card{SectionOrder: helpers.StringArray{"about", "services", "gallery", "hours", "map"}}
	}

	t.Run("yukarı taşıma komşuyla yer değiştirir", func(t *testing.T) {
		card := newCard()
		require.True(t, card.MoveSection(2, "up"))
		assert.Equal(t, []string{"about", "gallery", "services", "hours", "map"}, []string(card.SectionOrder))
	})

	t.Run("aşağı taşıma komşuyla yer değiştirir", func(t *testing.T) {
		card := newCard()
		require.True(t, card.MoveSection(0, "down"))
		assert.Equal(t, []string{"services", "about", "gallery", "hours", "map"}, []string(card.SectionOrder))
	})

	t.Run("ilk elemanda yukarı no-op", func(t *testing.T) {
		card := newCard()
		assert.False(t, card.MoveSection(0, "up"))
		assert.Equal(t, []string{"about", "services", "gallery", "hours", "map"}, []string(card.SectionOrder))
	})

	t.Run("son elemanda aşağı no-op", func(t *testing.T) {
		card := newCard()
		assert.False(t, card.MoveSection(4, "down"))
		assert.Equal(t, []string{"about", "services", "gallery", "hours", "map"}, []string(card.SectionOrder))
	})

	t.Run("sınır dışı index no-op", func(t *testing.T) {
		card := newCard()
		assert.False(t, card.MoveSection(-1, "up"))
		assert.False(t, card.MoveSection(7, "down"))
	})

	t.Run("geçersiz yön no-op", func(t *testing.T) {
		card := newCard()
		assert.False(t, card.MoveSection(1, "sideways"))
	})

	t.Run("aşağı sonra yukarı eski sırayı geri getirir", func(t *testing.T) {
		card := newCard()
		require.True(t, card.MoveSection(1, "down"))
		require.True(t, card.MoveSection(2, "up"))
		assert.Equal(t, []string{"about", "services", "gallery", "hours", "map"}, []string(card.SectionOrder))
	})
}

func TestBackfillBusinessHours(t *testing.T) {
	t.Run("boş girdi yedi varsayılan gün üretir", func(t *testing.T) {
		hours := BackfillBusinessHours(nil)
		require.Len(t, hours, 7)
		for i, day := range Weekdays {
			assert.Equal(t, day, hours[i].Day)
		}
	})

	t.Run("mevcut günler korunur eksikler tamamlanır", func(t *testing.T) {
		existing := []BusinessHour{
			{ItemID: "w", Day: "Wednesday", Open: "12:00", Close: "20:00"},
		}
		hours := BackfillBusinessHours(existing)
		require.Len(t, hours, 7)
		assert.Equal(t, "Monday", hours[0].Day)
		assert.Equal(t, "w", hours[2].ItemID)
		assert.Equal(t, "12:00", hours[2].Open)
		assert.Equal(t, "20:00", hours[2].Close)
	})

	t.Run("aynı günün tekrar eden kayıtlarından ilki kazanır", func(t *testing.T) {
		existing := []BusinessHour{
			{ItemID: "first", Day: "Monday", Open: "08:00", Close: "16:00"},
			{ItemID: "second", Day: "Monday", Open: "10:00", Close: "18:00"},
		}
		hours := BackfillBusinessHours(existing)
		require.Len(t, hours, 7)
		assert.Equal(t, "first", hours[0].ItemID)
	})
}

func TestHoursCoverWeek(t *testing.T) {
	t.Run("varsayılan saatler haftayı kapsar", func(t *testing.T) {
		assert.True(t, HoursCoverWeek(DefaultBusinessHours()))
	})

	t.Run("gün sırası önemli değildir", func(t *testing.T) {
		hours := DefaultBusinessHours()
		hours[0], hours[6] = hours[6], hours[0]
		assert.True(t, HoursCoverWeek(hours))
	})

	t.Run("eksik gün kapsamı bozar", func(t *testing.T) {
		assert.False(t, HoursCoverWeek(DefaultBusinessHours()[:6]))
	})

	t.Run("yedi kayıt ama tekrar eden gün kapsamı bozar", func(t *testing.T) {
		hours := DefaultBusinessHours()
		// Pazar yerine ikinci bir Pazartesi: sayı tutar, küme tutmaz.
		hours[6] = BusinessHour{ItemID: "dup", Day: "Monday", Open: "09:00", Close: "17:00"}
		require.Len(t, hours, 7)
		assert.False(t, HoursCoverWeek(hours))
		// Backfill aynı girdiyi gün başına tek kayda indirger.
		repaired := BackfillBusinessHours(hours)
		assert.True(t, HoursCoverWeek(repaired))
		assert.Equal(t, "Sunday", repaired[6].Day)
	})
}

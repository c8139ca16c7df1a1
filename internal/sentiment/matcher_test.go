package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchCategories(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{
			"Food arrived cold and the delivery rider was rude",
			[]string{CategoryFoodQuality, CategoryDelivery, CategoryService},
		},
		{
			"Found a hair in my food! This is unacceptable hygiene.",
			[]string{CategoryFoodQuality},
		},
		{
			"The box leaked, the price was steep, the staff were polite, the curry was fresh and it arrived fast",
			[]string{CategoryFoodQuality, CategoryDelivery, CategoryPackaging, CategoryService, CategoryValueForMoney},
		},
		{
			"Nothing to say",
			[]string{},
		},
		{
			// exact token matching, no stemming
			"Tasted great, prices fair, deliveries quick-ish",
			[]string{},
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchCategories(Tokenize(tt.text)), tt.text)
	}
}

func TestCategoriesAreTheFixedFive(t *testing.T) {
	assert.Equal(t, []string{
		CategoryFoodQuality, CategoryDelivery, CategoryPackaging, CategoryService, CategoryValueForMoney,
	}, Categories())
	assert.True(t, IsCategory(CategoryPackaging))
	assert.False(t, IsCategory("Hygiene"))
}

func TestMatchEmotions(t *testing.T) {
	t.Run("keywords in table order", func(t *testing.T) {
		got := MatchEmotions(Tokenize("Shocked! I love the curry but it was cold and had a bug"), 0)
		assert.Equal(t, []string{EmotionDisgust, EmotionJoy, EmotionDisappointment, EmotionSurprise}, got)
	})

	t.Run("keyword match suppresses the fallback", func(t *testing.T) {
		got := MatchEmotions(Tokenize("what a scam"), 5)
		assert.Equal(t, []string{EmotionAnger}, got)
	})

	fallback := []struct {
		raw  float64
		want string
	}{
		{-5, EmotionDisappointment},
		{-2, EmotionDisappointment},
		{-1.5, EmotionDissatisfaction},
		{0, EmotionNeutral},
		{0.5, EmotionSatisfaction},
		{2, EmotionJoy},
		{7, EmotionJoy},
	}
	for _, tt := range fallback {
		assert.Equal(t, []string{tt.want}, MatchEmotions(Tokenize("the order came"), tt.raw), "raw=%v", tt.raw)
	}
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Dedupe(nil))
}

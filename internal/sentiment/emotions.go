package sentiment

const (
	EmotionAnger           = "Anger/Frustration"
	EmotionDisgust         = "Disgust"
	EmotionJoy             = "Joy/Satisfaction"
	EmotionDisappointment  = "Disappointment"
	EmotionSurprise        = "Surprise"
	EmotionDissatisfaction = "Dissatisfaction"
	EmotionSatisfaction    = "Satisfaction"
	EmotionNeutral         = "Neutral"
)

var emotionTable = []keywordSet{
	newKeywordSet(EmotionAnger,
		"angry", "furious", "mad", "annoyed", "irritated", "ridiculous", "useless", "cheat", "scam"),
	newKeywordSet(EmotionDisgust,
		"hair", "bug", "rotten", "stale", "smell", "dirty", "filthy", "insect", "cockroach", "sick", "vomit"),
	newKeywordSet(EmotionJoy,
		"happy", "love", "best", "great", "excellent", "amazing", "wonderful", "perfect", "tasty",
		"delicious", "yummy", "fresh", "wow"),
	newKeywordSet(EmotionDisappointment,
		"disappointed", "bad", "poor", "worst", "hate", "terrible", "horrible", "awful", "bland",
		"salty", "raw", "cold", "late", "waste", "average", "dry"),
	newKeywordSet(EmotionSurprise,
		"shocked", "surprised", "unexpected"),
}

// MatchEmotions returns keyword-matched emotions in table order, or a single
// emotion derived from rawScore when nothing matched.
func MatchEmotions(tokens []string, rawScore float64) []string {
	set := tokenSet(tokens)
	emotions := make([]string, 0, len(emotionTable))
	for _, emotion := range emotionTable {
		if emotion.intersects(set) {
			emotions = append(emotions, emotion.Name)
		}
	}

	if len(emotions) == 0 {
		emotions = append(emotions, fallbackEmotion(rawScore))
	}

	return Dedupe(emotions)
}

func fallbackEmotion(rawScore float64) string {
	switch {
	case rawScore <= -2:
		return EmotionDisappointment
	case rawScore < 0:
		return EmotionDissatisfaction
	case rawScore >= 2:
		return EmotionJoy
	case rawScore > 0:
		return EmotionSatisfaction
	default:
		return EmotionNeutral
	}
}

// Dedupe keeps the first occurrence of every value.
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

package bot

// EnglishFrequencyOrder lists letters from most to least common in English text
const EnglishFrequencyOrder = "ETAOINSHRDLCUMWFGYPBVKJXQZ"

// FrequencyStrategy guesses letters in a fixed frequency order
type FrequencyStrategy struct {
	order string
}

// NewFrequencyStrategy creates a FrequencyStrategy using English letter frequency
func NewFrequencyStrategy() *FrequencyStrategy {
	return &FrequencyStrategy{order: EnglishFrequencyOrder}
}

// ChooseLetter returns the most frequent letter not yet guessed
func (s *FrequencyStrategy) ChooseLetter(view View) rune {
	for _, letter := range s.order {
		if !view.HasGuessed(letter) {
			return letter
		}
	}
	return 0
}

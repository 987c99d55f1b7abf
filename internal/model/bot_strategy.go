package model

// Bot strategy constants
const (
	BotStrategyRandom    = "random"
	BotStrategyFrequency = "frequency"
	BotStrategyPattern   = "pattern"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyRandom:
		return "Random"
	case BotStrategyFrequency:
		return "Letter frequency"
	case BotStrategyPattern:
		return "Pattern match"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyRandom, BotStrategyFrequency, BotStrategyPattern}
}

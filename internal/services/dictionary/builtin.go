package dictionary

// Built-in dictionary names
const (
	NameAnimals     = "animals"
	NameFruits      = "fruits"
	NameCountries   = "countries"
	NameProgramming = "programming"
)

type builtinList struct {
	name     string
	category string
	words    []string
}

var builtinLists = []builtinList{
	{
		name:     NameAnimals,
		category: "Animals",
		words: []string{
			"aardvark", "alligator", "alpaca", "antelope", "badger", "beaver", "buffalo",
			"camel", "cheetah", "chimpanzee", "cougar", "coyote", "crocodile", "dolphin",
			"donkey", "elephant", "ferret", "flamingo", "giraffe", "gorilla", "hamster",
			"hedgehog", "hippopotamus", "hyena", "iguana", "jaguar", "kangaroo", "koala",
			"leopard", "llama", "lobster", "meerkat", "mongoose", "narwhal", "ocelot",
			"octopus", "ostrich", "otter", "panther", "pelican", "penguin", "porcupine",
			"raccoon", "reindeer", "rhinoceros", "salamander", "scorpion", "squirrel",
			"tortoise", "walrus", "weasel", "wolverine", "zebra",
		},
	},
	{
		name:     NameFruits,
		category: "Fruits",
		words: []string{
			"apple", "apricot", "avocado", "banana", "blackberry", "blueberry", "cherry",
			"coconut", "cranberry", "date", "durian", "elderberry", "fig", "gooseberry",
			"grape", "grapefruit", "guava", "kiwi", "kumquat", "lemon", "lime", "lychee",
			"mandarin", "mango", "melon", "mulberry", "nectarine", "olive", "orange",
			"papaya", "peach", "pear", "persimmon", "pineapple", "plum", "pomegranate",
			"quince", "raspberry", "strawberry", "tangerine", "watermelon",
		},
	},
	{
		name:     NameCountries,
		category: "Countries",
		words: []string{
			"argentina", "australia", "austria", "belgium", "bolivia", "brazil", "canada",
			"chile", "colombia", "denmark", "ecuador", "egypt", "ethiopia", "finland",
			"france", "germany", "greece", "hungary", "iceland", "india", "indonesia",
			"ireland", "italy", "jamaica", "japan", "kenya", "malaysia", "mexico",
			"morocco", "nepal", "netherlands", "nigeria", "norway", "pakistan", "peru",
			"poland", "portugal", "romania", "singapore", "spain", "sweden",
			"switzerland", "thailand", "turkey", "uganda", "uruguay", "vietnam",
		},
	},
	{
		name:     NameProgramming,
		category: "Programming",
		words: []string{
			"algorithm", "array", "boolean", "buffer", "channel", "closure", "compiler",
			"concurrency", "debugger", "function", "goroutine", "interface", "iterator",
			"keyword", "library", "mutex", "package", "pointer", "recursion", "runtime",
			"scheduler", "semaphore", "slice", "struct", "syntax", "variable",
		},
	},
}

package catalog

// Difficulty buckets a technology's learning and implementation effort.
type Difficulty string

const (
	VeryEasy Difficulty = "very-easy"
	Easy     Difficulty = "easy"
	Medium   Difficulty = "medium"
	Hard     Difficulty = "hard"
	VeryHard Difficulty = "very-hard"
)

// Ordinal maps a difficulty onto a 1-5 scale. Unknown values read as
// medium so arithmetic over profiles never skews on bad data.
func (d Difficulty) Ordinal() int {
	switch d {
	case VeryEasy:
		return 1
	case Easy:
		return 2
	case Medium:
		return 3
	case Hard:
		return 4
	case VeryHard:
		return 5
	default:
		return 3
	}
}

// CostTier is a coarse cost bucket used in place of concrete figures.
type CostTier string

const (
	CostVeryLow  CostTier = "very-low"
	CostLow      CostTier = "low"
	CostMedium   CostTier = "medium"
	CostHigh     CostTier = "high"
	CostVeryHigh CostTier = "very-high"
)

// Ordinal maps a cost tier onto a 1-5 scale, defaulting to medium.
func (c CostTier) Ordinal() int {
	switch c {
	case CostVeryLow:
		return 1
	case CostLow:
		return 2
	case CostMedium:
		return 3
	case CostHigh:
		return 4
	case CostVeryHigh:
		return 5
	default:
		return 3
	}
}

// TierFromOrdinal is the inverse of CostTier.Ordinal, clamping out-of-range
// values to the nearest tier.
func TierFromOrdinal(n int) CostTier {
	switch {
	case n <= 1:
		return CostVeryLow
	case n == 2:
		return CostLow
	case n == 3:
		return CostMedium
	case n == 4:
		return CostHigh
	default:
		return CostVeryHigh
	}
}

// CostEstimate holds the per-concern cost tiers for a technology.
type CostEstimate struct {
	Development CostTier `yaml:"development" json:"development"`
	Hosting     CostTier `yaml:"hosting" json:"hosting"`
	Maintenance CostTier `yaml:"maintenance" json:"maintenance"`
}

// TechnologyProfile describes a known technology from the dataset.
// Profiles are read-only after Catalog.Load.
type TechnologyProfile struct {
	Name              string       `yaml:"name" json:"name"`
	Category          string       `yaml:"category" json:"category"`
	Difficulty        Difficulty   `yaml:"difficulty" json:"difficulty"`
	Description       string       `yaml:"description" json:"description"`
	Alternatives      []string     `yaml:"alternatives" json:"alternatives,omitempty"`
	SaaSAlternatives  []string     `yaml:"saas_alternatives" json:"saas_alternatives,omitempty"`
	CostEstimate      CostEstimate `yaml:"cost" json:"cost"`
	LearningResources []string     `yaml:"learning_resources" json:"learning_resources,omitempty"`
	TypicalUseCase    string       `yaml:"typical_use_case" json:"typical_use_case,omitempty"`
	MarketDemand      string       `yaml:"market_demand" json:"market_demand,omitempty"`
}

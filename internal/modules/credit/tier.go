package credit

// CreditTier is a display band for a credit score
type CreditTier struct {
	Tier     string   `json:"tier"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Benefits []string `json:"benefits"`
}

// Tier identifiers, highest first
const (
	TierPlatinum = "platinum"
	TierGold     = "gold"
	TierSilver   = "silver"
	TierBronze   = "bronze"
)

type tierBand struct {
	minScore int
	tier     CreditTier
}

// Bands are ordered by descending minimum score; the last band starts at 0
// so every score in [0, 100] lands in exactly one band.
var tierBands = []tierBand{
	{85, CreditTier{
		Tier:     TierPlatinum,
		Name:     "Platinum",
		Color:    "#6366f1",
		Benefits: []string{"Lowest interest rates", "Priority processing", "Higher limits"},
	}},
	{70, CreditTier{
		Tier:     TierGold,
		Name:     "Gold",
		Color:    "#eab308",
		Benefits: []string{"Low interest rates", "Fast processing", "Good limits"},
	}},
	{55, CreditTier{
		Tier:     TierSilver,
		Name:     "Silver",
		Color:    "#94a3b8",
		Benefits: []string{"Standard rates", "Regular processing", "Standard limits"},
	}},
	{minScore, CreditTier{
		Tier:     TierBronze,
		Name:     "Bronze",
		Color:    "#d97706",
		Benefits: []string{"Entry-level access", "Build your score", "Limited options"},
	}},
}

// GetCreditTier maps a score to its band. Out-of-range scores are clamped first.
func GetCreditTier(score int) CreditTier {
	score = clampScore(score)
	for _, band := range tierBands {
		if score >= band.minScore {
			return copyTier(band.tier)
		}
	}
	return copyTier(tierBands[len(tierBands)-1].tier)
}

func copyTier(t CreditTier) CreditTier {
	t.Benefits = append([]string(nil), t.Benefits...)
	return t
}

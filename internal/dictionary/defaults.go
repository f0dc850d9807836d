package dictionary

// Default tactic names.
const (
	UrgencyMarketing   = "urgency_marketing"
	ExclusiveMarketing = "exclusive_marketing"
)

var defaultTactics = []Tactic{
	{
		Name: UrgencyMarketing,
		Keywords: []string{
			"limited", "limited time", "limited run", "limited edition", "order now",
			"last chance", "hurry", "while supplies last", "before they're gone",
			"selling out", "selling fast", "act now", "don't wait", "today only",
			"expires soon", "final hours", "almost gone",
		},
	},
	{
		Name: ExclusiveMarketing,
		Keywords: []string{
			"exclusive", "exclusively", "exclusive offer", "exclusive deal",
			"members only", "vip", "special access", "invitation only",
			"premium", "privileged", "limited access", "select customers",
			"insider", "private sale", "early access",
		},
	},
}

// Default returns a fresh store seeded with the built-in dictionaries.
func Default() *Store {
	return FromTactics(defaultTactics)
}

package entities

// DefaultTaxonomy holds the built-in allowed subtypes per need category,
// seeded into the need service on startup. Config may override individual
// categories.
var DefaultTaxonomy = []struct {
	Type     NeedType
	Subtypes []string
}{
	{Physiological, []string{"Food", "Drink", "Shelter", "Climate", "Sleep"}},
	{Safety, []string{"Security", "Order", "Stability"}},
	{Belonging, []string{"Friendship", "Trust", "Affiliating"}},
	{Esteem, []string{"Achievement", "Mastery", "Status", "Prestige"}},
	{Cognitive, []string{"Knowledge", "Curiosity"}},
	{Aesthetic, []string{"Art", "Music"}},
	{SelfActualization, []string{"Growth"}},
	{Transcendence, []string{"Spiritual", "Religious", "Scientific"}},
}

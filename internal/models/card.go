package models

// Card is a single immutable entry in the card catalog
type Card struct {
	// ID is the unique identifier for the card within the catalog
	ID string

	// Name is the card's display name
	Name string

	// Flavor is the card's narrative text
	Flavor string

	// Requirements describes what the holder must do to honor the card
	Requirements string
}

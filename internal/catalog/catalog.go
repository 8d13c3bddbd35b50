package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/davrost/arcana/internal/models"
)

// Keys for the copy the bot posts. Every key listed in requiredKeys must
// exist in the embedded strings file.
const (
	KeyOpening       = "opening"
	KeyNarration     = "narration"
	KeyDrawPrompt    = "draw_prompt"
	KeyTooSoon       = "too_soon"
	KeyTooSoonWait   = "too_soon_wait"
	KeyDeckExhausted = "deck_exhausted"
	KeyCardReveal    = "card_reveal"
)

// ErrCardNotFound is returned when no card has the requested ID
var ErrCardNotFound = errors.New("card not found")

//go:embed data/cards.yaml
var cardsData []byte

//go:embed data/strings.yaml
var stringsData []byte

var requiredKeys = []string{
	KeyOpening,
	KeyNarration,
	KeyDrawPrompt,
	KeyTooSoon,
	KeyTooSoonWait,
	KeyDeckExhausted,
	KeyCardReveal,
}

type cardsFile struct {
	Cards []models.Card `yaml:"cards"`
}

type stringsFile struct {
	Strings map[string]string `yaml:"strings"`
}

// staticCatalog implements the Catalog interface over the embedded data
type staticCatalog struct {
	ids     []string
	cards   map[string]models.Card
	strings map[string]string
}

// New parses and validates the embedded catalog
func New() (*staticCatalog, error) {
	cards, ids, err := parseCards(cardsData)
	if err != nil {
		return nil, err
	}

	text, err := parseStrings(stringsData)
	if err != nil {
		return nil, err
	}

	return &staticCatalog{
		ids:     ids,
		cards:   cards,
		strings: text,
	}, nil
}

// ListCardIDs returns every card ID in catalog order
func (c *staticCatalog) ListCardIDs() []string {
	ids := make([]string, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// GetCard looks up a card by its ID
func (c *staticCatalog) GetCard(id string) (models.Card, error) {
	card, ok := c.cards[id]
	if !ok {
		return models.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}

	return card, nil
}

// String returns the copy registered under key, or the key itself when no
// copy exists
func (c *staticCatalog) String(key string) string {
	if text, ok := c.strings[key]; ok {
		return text
	}

	return key
}

func parseCards(data []byte) (map[string]models.Card, []string, error) {
	var file cardsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse card data: %w", err)
	}

	if len(file.Cards) == 0 {
		return nil, nil, errors.New("card data holds no cards")
	}

	cards := make(map[string]models.Card, len(file.Cards))
	ids := make([]string, 0, len(file.Cards))

	for _, card := range file.Cards {
		if card.ID == "" || card.Name == "" {
			return nil, nil, fmt.Errorf("card %q is missing an ID or name", card.ID)
		}

		if _, exists := cards[card.ID]; exists {
			return nil, nil, fmt.Errorf("duplicate card ID %q", card.ID)
		}

		cards[card.ID] = card
		ids = append(ids, card.ID)
	}

	return cards, ids, nil
}

func parseStrings(data []byte) (map[string]string, error) {
	var file stringsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse string data: %w", err)
	}

	for _, key := range requiredKeys {
		if file.Strings[key] == "" {
			return nil, fmt.Errorf("string %q is missing", key)
		}
	}

	return file.Strings, nil
}

package tcgdex

// Normalized shapes exposed to the rest of the application. The raw TCGdex
// payloads carry optional nested objects (card counts, parent references);
// everything here is flattened so consumers never deal with missing keys.

// SeriesSummary is a series as returned by the listing endpoint (no sets).
type SeriesSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Series is a fully resolved series including its sets.
type Series struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets []Set  `json:"sets"`
}

// SetSummary is the reduced set reference attached to a card.
type SetSummary struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	CardCountTotal    int    `json:"card_count_total"`
	CardCountOfficial int    `json:"card_count_official"`
}

// Set is a card set. Cards is only populated by GetSet; Series is only
// populated when the payload carried a parent series reference.
type Set struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	CardCountTotal    int            `json:"card_count_total"`
	CardCountOfficial int            `json:"card_count_official"`
	Series            *SeriesSummary `json:"series,omitempty"`
	Cards             []CardSummary  `json:"cards,omitempty"`
}

// CardSummary is a card as it appears inside a set's card list or in
// search results. ID may be empty on some datasets; callers synthesize
// "<setID>-<localID>" in that case.
type CardSummary struct {
	ID      string `json:"id"`
	LocalID string `json:"local_id"`
	Name    string `json:"name"`
	Image   string `json:"image,omitempty"`
}

// Card is a fully resolved card. String fields are empty and HP is zero
// when the source omitted them.
type Card struct {
	ID          string      `json:"id"`
	LocalID     string      `json:"local_id"`
	Name        string      `json:"name"`
	Image       string      `json:"image,omitempty"`
	Rarity      string      `json:"rarity,omitempty"`
	Illustrator string      `json:"illustrator,omitempty"`
	Category    string      `json:"category,omitempty"`
	HP          int         `json:"hp,omitempty"`
	Types       []string    `json:"types,omitempty"`
	Stage       string      `json:"stage,omitempty"`
	Description string      `json:"description,omitempty"`
	Set         *SetSummary `json:"set,omitempty"`
}

// Raw API payloads. Optional nested shapes are pointers so absent
// sub-objects decode to nil instead of failing.

type cardCountDTO struct {
	Total    int `json:"total"`
	Official int `json:"official"`
}

type seriesResumeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type seriesDTO struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Sets []setResumeDTO `json:"sets"`
}

type setResumeDTO struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	CardCount *cardCountDTO `json:"cardCount"`
}

type setDTO struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CardCount *cardCountDTO    `json:"cardCount"`
	Serie     *seriesResumeDTO `json:"serie"`
	Cards     []cardResumeDTO  `json:"cards"`
}

type cardResumeDTO struct {
	ID      string `json:"id"`
	LocalID string `json:"localId"`
	Name    string `json:"name"`
	Image   string `json:"image"`
}

type cardDTO struct {
	ID          string   `json:"id"`
	LocalID     string   `json:"localId"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Rarity      string   `json:"rarity"`
	Illustrator string   `json:"illustrator"`
	Category    string   `json:"category"`
	HP          int      `json:"hp"`
	Types       []string `json:"types"`
	Stage       string   `json:"stage"`
	Description string   `json:"description"`
	Set         *setDTO  `json:"set"`
}

func (d setResumeDTO) normalizeSummary() Set {
	s := Set{ID: d.ID, Name: d.Name}
	if d.CardCount != nil {
		s.CardCountTotal = d.CardCount.Total
		s.CardCountOfficial = d.CardCount.Official
	}
	return s
}

func (d setDTO) normalize() *Set {
	s := &Set{ID: d.ID, Name: d.Name}
	if d.CardCount != nil {
		s.CardCountTotal = d.CardCount.Total
		s.CardCountOfficial = d.CardCount.Official
	}
	if d.Serie != nil {
		s.Series = &SeriesSummary{ID: d.Serie.ID, Name: d.Serie.Name}
	}
	for _, c := range d.Cards {
		s.Cards = append(s.Cards, CardSummary(c))
	}
	return s
}

func (d cardDTO) normalize() *Card {
	c := &Card{
		ID:          d.ID,
		LocalID:     d.LocalID,
		Name:        d.Name,
		Image:       d.Image,
		Rarity:      d.Rarity,
		Illustrator: d.Illustrator,
		Category:    d.Category,
		HP:          d.HP,
		Types:       d.Types,
		Stage:       d.Stage,
		Description: d.Description,
	}
	if d.Set != nil {
		set := &SetSummary{ID: d.Set.ID, Name: d.Set.Name}
		if d.Set.CardCount != nil {
			set.CardCountTotal = d.Set.CardCount.Total
			set.CardCountOfficial = d.Set.CardCount.Official
		}
		c.Set = set
	}
	return c
}

// Package model holds the record families shared by the store, the provider
// adapter and the service: base Pokémon data, evolution requirements and mega
// forms, plus the type and weather lookup tables templates draw from.
package model

// DefaultDataSource tags records resolved from the public stats API.
const DefaultDataSource = "pogoapi.net"

// RarityStandard is the sentinel used when the upstream rarity table has no
// entry for a Pokémon.
const RarityStandard = "Standard"

// Pokemon represents a row in the pokemon_data table. The id is assigned by
// the upstream source and is the join key across all record families.
type Pokemon struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Types       []Type `json:"types"`
	BaseAttack  int    `json:"base_attack"`
	BaseDefense int    `json:"base_defense"`
	BaseStamina int    `json:"base_stamina"`
	CPLevel20   int    `json:"cp_level_20"`
	CPLevel25   int    `json:"cp_level_25"`
	CPLevel30   int    `json:"cp_level_30"`
	CPLevel40   int    `json:"cp_level_40"`
	MaxCP       int    `json:"max_cp"`

	BuddyDistance *int    `json:"buddy_distance"`  // km, nil when unknown
	CandyToEvolve *int    `json:"candy_to_evolve"` // nil when it does not evolve
	ShinyAvail    bool    `json:"is_shiny_available"`
	Released      bool    `json:"is_released"`
	Rarity        *string `json:"rarity"`
	Form          string  `json:"form"` // defaults to "Normal"
	BaseStardust  *int    `json:"base_stardust"`

	CreatedAt  int64  `json:"created_at"` // Unix millis
	UpdatedAt  int64  `json:"updated_at"` // Unix millis
	DataSource string `json:"data_source"`
}

// EvolutionRequirement is one way a Pokémon can evolve into a target species.
type EvolutionRequirement struct {
	PokemonID           int      `json:"pokemon_id"` // evolution target
	PokemonName         string   `json:"pokemon_name"`
	CandyRequired       int      `json:"candy_required"`
	ItemRequired        *string  `json:"item_required"`
	LureRequired        *string  `json:"lure_required"`
	NoCandyIfTraded     bool     `json:"no_candy_cost_if_traded"`
	Priority            *int     `json:"priority"` // display ordering, descending
	OnlyDaytime         bool     `json:"only_evolves_in_daytime"`
	OnlyNighttime       bool     `json:"only_evolves_in_nighttime"`
	MustBeBuddy         bool     `json:"must_be_buddy_to_evolve"`
	BuddyDistanceNeeded *float64 `json:"buddy_distance_required"`
	GenderRequired      *string  `json:"gender_required"`
}

// Evolution groups the evolution requirements owned by one source Pokémon.
// It is replaced wholesale on every refresh, never merged field by field.
type Evolution struct {
	PokemonID   int                    `json:"pokemon_id"` // evolving Pokémon
	PokemonName string                 `json:"pokemon_name"`
	Form        *string                `json:"form"`
	Evolutions  []EvolutionRequirement `json:"evolutions"`
}

// MegaEvolution is one mega form of a Pokémon. A species can have several
// (e.g. Charizard X and Y); all rows for a pokemon id are replaced together.
type MegaEvolution struct {
	PokemonID      int      `json:"pokemon_id"`
	PokemonName    string   `json:"pokemon_name"`
	Form           string   `json:"form"`
	MegaName       string   `json:"mega_name"`
	FirstEnergy    int      `json:"first_time_mega_energy_required"`
	Energy         int      `json:"mega_energy_required"`
	BaseAttack     int      `json:"base_attack"`
	BaseDefense    int      `json:"base_defense"`
	BaseStamina    int      `json:"base_stamina"`
	Types          []Type   `json:"types"`
	CPMultOverride *float64 `json:"cp_multiplier_override"`
}

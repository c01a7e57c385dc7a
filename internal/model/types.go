package model

import "strings"

// Type is one of the eighteen Pokémon Go types.
type Type string

const (
	TypeNormal   Type = "normal"
	TypeFire     Type = "fire"
	TypeWater    Type = "water"
	TypeElectric Type = "electric"
	TypeGrass    Type = "grass"
	TypeIce      Type = "ice"
	TypeFighting Type = "fighting"
	TypePoison   Type = "poison"
	TypeGround   Type = "ground"
	TypeFlying   Type = "flying"
	TypePsychic  Type = "psychic"
	TypeBug      Type = "bug"
	TypeRock     Type = "rock"
	TypeGhost    Type = "ghost"
	TypeDragon   Type = "dragon"
	TypeDark     Type = "dark"
	TypeSteel    Type = "steel"
	TypeFairy    Type = "fairy"
)

var spanishNames = map[Type]string{
	TypeNormal:   "Normal",
	TypeFire:     "Fuego",
	TypeWater:    "Agua",
	TypeElectric: "Eléctrico",
	TypeGrass:    "Planta",
	TypeIce:      "Hielo",
	TypeFighting: "Lucha",
	TypePoison:   "Veneno",
	TypeGround:   "Tierra",
	TypeFlying:   "Volador",
	TypePsychic:  "Psíquico",
	TypeBug:      "Bicho",
	TypeRock:     "Roca",
	TypeGhost:    "Fantasma",
	TypeDragon:   "Dragón",
	TypeDark:     "Siniestro",
	TypeSteel:    "Acero",
	TypeFairy:    "Hada",
}

var typeEmojis = map[Type]string{
	TypeNormal:   "⚪",
	TypeFire:     "🔥",
	TypeWater:    "💧",
	TypeElectric: "⚡️",
	TypeGrass:    "🌿",
	TypeIce:      "❄️",
	TypeFighting: "🥊",
	TypePoison:   "☠️",
	TypeGround:   "🌋",
	TypeFlying:   "🪽",
	TypePsychic:  "🔮",
	TypeBug:      "🐛",
	TypeRock:     "🪨",
	TypeGhost:    "👻",
	TypeDragon:   "🐉",
	TypeDark:     "🌑",
	TypeSteel:    "⚙️",
	TypeFairy:    "🧚",
}

// ParseType resolves a raw type token case-insensitively. Unknown tokens
// report ok=false so callers can drop them without failing a whole record.
func ParseType(token string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(token)))
	_, ok := spanishNames[t]
	return t, ok
}

// ParseTypes converts raw tokens to types, silently dropping unknown ones.
func ParseTypes(tokens []string) []Type {
	var types []Type
	for _, tok := range tokens {
		if t, ok := ParseType(tok); ok {
			types = append(types, t)
		}
	}
	return types
}

// SpanishName returns the Spanish display name for the type.
func (t Type) SpanishName() string {
	return spanishNames[t]
}

// Emoji returns the emoji glyph for the type.
func (t Type) Emoji() string {
	return typeEmojis[t]
}

// AllTypes returns every known type. Order is not significant.
func AllTypes() []Type {
	types := make([]Type, 0, len(spanishNames))
	for t := range spanishNames {
		types = append(types, t)
	}
	return types
}

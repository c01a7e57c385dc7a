package model

import "sort"

// Weather is one of the in-game weather conditions.
type Weather string

const (
	WeatherClear        Weather = "clear"
	WeatherSunny        Weather = "sunny"
	WeatherPartlyCloudy Weather = "partly_cloudy"
	WeatherCloudy       Weather = "cloudy"
	WeatherRain         Weather = "rain"
	WeatherSnow         Weather = "snow"
	WeatherFog          Weather = "fog"
	WeatherWindy        Weather = "windy"
)

var weatherEmojis = map[Weather]string{
	WeatherClear:        "🌙",
	WeatherSunny:        "☀️",
	WeatherPartlyCloudy: "⛅",
	WeatherCloudy:       "☁️",
	WeatherRain:         "🌧️",
	WeatherSnow:         "❄️",
	WeatherFog:          "🌫️",
	WeatherWindy:        "🪁",
}

var weatherBoosts = map[Weather][]Type{
	WeatherClear:        {TypeFire, TypeGrass, TypeGround},
	WeatherSunny:        {TypeFire, TypeGrass, TypeGround},
	WeatherPartlyCloudy: {TypeNormal, TypeRock},
	WeatherCloudy:       {TypeFighting, TypePoison, TypeFairy},
	WeatherRain:         {TypeWater, TypeElectric, TypeBug},
	WeatherSnow:         {TypeIce, TypeSteel},
	WeatherFog:          {TypeDark, TypeGhost},
	WeatherWindy:        {TypeFlying, TypeDragon, TypePsychic},
}

// Emoji returns the emoji glyph for the weather condition.
func (w Weather) Emoji() string {
	return weatherEmojis[w]
}

// BoostedTypes returns the types boosted under the weather condition.
func BoostedTypes(w Weather) []Type {
	return weatherBoosts[w]
}

// WeathersForType returns every weather condition that boosts the type.
func WeathersForType(t Type) []Weather {
	var out []Weather
	for w, types := range weatherBoosts {
		for _, bt := range types {
			if bt == t {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

// WeatherEmojisForTypes builds the glyph string for every weather condition
// boosting any of the given types. Clear is excluded: the events this feeds
// run before nightfall.
func WeatherEmojisForTypes(types []Type) string {
	seen := map[Weather]bool{}
	for _, t := range types {
		for _, w := range WeathersForType(t) {
			seen[w] = true
		}
	}
	delete(seen, WeatherClear)

	weathers := make([]Weather, 0, len(seen))
	for w := range seen {
		weathers = append(weathers, w)
	}
	sort.Slice(weathers, func(i, j int) bool { return weathers[i] < weathers[j] })

	out := ""
	used := map[string]bool{}
	for _, w := range weathers {
		e := w.Emoji()
		if !used[e] {
			used[e] = true
			out += e
		}
	}
	return out
}

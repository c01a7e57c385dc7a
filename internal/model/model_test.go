package model

import "testing"

func TestParseType_KnownTokens(t *testing.T) {
	got, ok := ParseType("Fire")
	if !ok {
		t.Fatal("expected fire to parse")
	}
	if got != TypeFire {
		t.Errorf("got %q, want %q", got, TypeFire)
	}
}

func TestParseType_Unknown(t *testing.T) {
	if _, ok := ParseType("shadow"); ok {
		t.Error("unknown token should not parse")
	}
}

func TestParseTypes_DropsUnknown(t *testing.T) {
	got := ParseTypes([]string{"Water", "???", "Flying"})
	if len(got) != 2 {
		t.Fatalf("got %d types, want 2", len(got))
	}
	if got[0] != TypeWater || got[1] != TypeFlying {
		t.Errorf("got %v, want [water flying]", got)
	}
}

func TestAllTypesHaveNamesAndEmojis(t *testing.T) {
	types := AllTypes()
	if len(types) != 18 {
		t.Fatalf("got %d types, want 18", len(types))
	}
	for _, typ := range types {
		if typ.SpanishName() == "" {
			t.Errorf("%q has no Spanish name", typ)
		}
		if typ.Emoji() == "" {
			t.Errorf("%q has no emoji", typ)
		}
	}
}

func TestSpanishNames(t *testing.T) {
	cases := map[Type]string{
		TypeFire:     "Fuego",
		TypeWater:    "Agua",
		TypeElectric: "Eléctrico",
		TypePsychic:  "Psíquico",
	}
	for typ, want := range cases {
		if got := typ.SpanishName(); got != want {
			t.Errorf("%q: got %q, want %q", typ, got, want)
		}
	}
}

func TestWeatherEmojisForTypes_Electric(t *testing.T) {
	// Electric is boosted only by rain.
	got := WeatherEmojisForTypes([]Type{TypeElectric})
	if got != WeatherRain.Emoji() {
		t.Errorf("got %q, want %q", got, WeatherRain.Emoji())
	}
}

func TestWeatherEmojisForTypes_ExcludesClear(t *testing.T) {
	// Fire is boosted by clear and sunny; only sunny should show.
	got := WeatherEmojisForTypes([]Type{TypeFire})
	if got != WeatherSunny.Emoji() {
		t.Errorf("got %q, want %q", got, WeatherSunny.Emoji())
	}
}

func TestWeatherEmojisForTypes_DedupAcrossTypes(t *testing.T) {
	// Water and electric share rain; the glyph must appear once.
	got := WeatherEmojisForTypes([]Type{TypeWater, TypeElectric})
	want := WeatherRain.Emoji()
	count := 0
	for i := 0; i+len(want) <= len(got); i++ {
		if got[i:i+len(want)] == want {
			count++
		}
	}
	if count != 1 {
		t.Errorf("rain emoji appears %d times in %q, want 1", count, got)
	}
}

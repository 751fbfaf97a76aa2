package forecast

import (
	"testing"

	"route-weather-service/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestDecodeConditionPrimaryTable(t *testing.T) {
	tests := []struct {
		code      int
		wantType  domain.PrecipType
		wantLabel string
	}{
		{0, domain.PrecipNone, "No precipitation"},
		{1, domain.PrecipRain, "Rain"},
		{3, domain.PrecipFreezingRain, "Freezing rain"},
		{5, domain.PrecipSnow, "Snow"},
		{6, domain.PrecipSnow, "Wet snow"},
		{7, domain.PrecipSleet, "Rain/snow mix"},
		{8, domain.PrecipSleet, "Ice pellets"},
		{12, domain.PrecipFreezingRain, "Freezing drizzle"},
	}

	for _, tt := range tests {
		got := DecodeCondition(intPtr(tt.code), nil)
		if got.PrecipType != tt.wantType || got.Label != tt.wantLabel {
			t.Errorf("code %d = %+v, want {%s %s}", tt.code, got, tt.wantType, tt.wantLabel)
		}
	}
}

func TestDecodeConditionUnknownPrimaryCode(t *testing.T) {
	got := DecodeCondition(intPtr(42), nil)
	if got.PrecipType != domain.PrecipNone {
		t.Errorf("unknown code type = %q, want none", got.PrecipType)
	}
	if got.Label != "Type 42" {
		t.Errorf("unknown code label = %q, want \"Type 42\"", got.Label)
	}
}

func TestDecodeConditionNilPrimaryCode(t *testing.T) {
	got := DecodeCondition(nil, nil)
	if got.PrecipType != domain.PrecipNone || got.Label != "Unknown" {
		t.Errorf("nil primary = %+v, want {none Unknown}", got)
	}
}

func TestDecodeConditionFogAndThunderstormOverride(t *testing.T) {
	// Fog and thunderstorm override even a populated primary type.
	got := DecodeCondition(intPtr(5), intPtr(95))
	if got.PrecipType != domain.PrecipThunderstorm || got.Label != "Thunderstorm" {
		t.Errorf("snow + WMO 95 = %+v, want thunderstorm override", got)
	}

	got = DecodeCondition(intPtr(0), intPtr(95))
	if got.PrecipType != domain.PrecipThunderstorm {
		t.Errorf("no-precip + WMO 95 type = %q, want thunderstorm", got.PrecipType)
	}

	got = DecodeCondition(intPtr(1), intPtr(45))
	if got.PrecipType != domain.PrecipFog || got.Label != "Fog" {
		t.Errorf("rain + WMO 45 = %+v, want fog override", got)
	}
}

func TestDecodeConditionShowersFillInOnly(t *testing.T) {
	// Showers fill an empty primary type.
	got := DecodeCondition(intPtr(0), intPtr(81))
	if got.PrecipType != domain.PrecipShowers || got.Label != "Moderate showers" {
		t.Errorf("no-precip + WMO 81 = %+v, want showers fill-in", got)
	}

	got = DecodeCondition(intPtr(0), intPtr(86))
	if got.PrecipType != domain.PrecipSnowShowers {
		t.Errorf("no-precip + WMO 86 type = %q, want snow_showers", got.PrecipType)
	}

	// But never replace a populated primary type.
	for _, wmo := range []int{0, 61, 80, 85} {
		got = DecodeCondition(intPtr(5), intPtr(wmo))
		if got.PrecipType != domain.PrecipSnow {
			t.Errorf("snow + WMO %d type = %q, want snow preserved", wmo, got.PrecipType)
		}
	}
}

func TestDecodeConditionGenericLabelForDisplayOnly(t *testing.T) {
	got := DecodeCondition(intPtr(0), intPtr(3))
	if got.PrecipType != domain.PrecipNone {
		t.Errorf("overcast refinement set type %q, want none", got.PrecipType)
	}
	if got.Label != "Overcast" {
		t.Errorf("label = %q, want Overcast", got.Label)
	}

	// A generic label does not replace a populated primary label either.
	got = DecodeCondition(intPtr(1), intPtr(3))
	if got.Label != "Rain" {
		t.Errorf("rain + overcast label = %q, want Rain", got.Label)
	}
}

func TestDecodeConditionUnknownSecondaryCode(t *testing.T) {
	got := DecodeCondition(intPtr(0), intPtr(200))
	if got.PrecipType != domain.PrecipNone || got.Label != "No precipitation" {
		t.Errorf("unknown WMO code = %+v, want primary result untouched", got)
	}
}

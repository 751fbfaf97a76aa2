package forecast

import (
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func testSeries() HourlySeries {
	return HourlySeries{
		Times:         []string{"2024-01-01T08:00"},
		TempF:         []*float64{fp(28.34)},
		PrecipIn:      []*float64{fp(0.12)},
		RainIn:        []*float64{fp(0)},
		ShowersIn:     []*float64{fp(0)},
		SnowfallCm:    []*float64{fp(2.0)},
		PrecipCode:    []*int{intPtr(5)},
		WeatherCode:   []*int{intPtr(73)},
		CloudPct:      []*float64{fp(88.6)},
		WindMph:       []*float64{fp(22.5)},
		WindDirDeg:    []*float64{fp(270)},
		VisibilityMtr: []*float64{fp(8046.7)},
	}
}

func TestBuildRecordPopulated(t *testing.T) {
	rec := BuildRecord(testSeries(), 0, 40)

	if !rec.Available {
		t.Fatal("record should be available")
	}
	if rec.TempF == nil || *rec.TempF != 28.3 {
		t.Errorf("TempF = %v, want 28.3", rec.TempF)
	}
	if want := 2.0 * 0.393701; math.Abs(rec.SnowfallInHr-round(want, 4)) > 1e-9 {
		t.Errorf("SnowfallInHr = %v, want %v", rec.SnowfallInHr, round(want, 4))
	}
	if rec.VisibilityMi != 5.0 {
		t.Errorf("VisibilityMi = %v, want 5.0", rec.VisibilityMi)
	}
	if rec.WindDir != "W" {
		t.Errorf("WindDir = %q, want W", rec.WindDir)
	}
	if rec.WindWarning {
		t.Error("22.5 mph should not trip a 40 mph warning")
	}
	if rec.PrecipType != "snow" || rec.Condition != "Snow" {
		t.Errorf("decode = (%s, %s), want (snow, Snow)", rec.PrecipType, rec.Condition)
	}
}

func TestBuildRecordNullTemperature(t *testing.T) {
	s := testSeries()
	s.TempF = []*float64{nil}

	rec := BuildRecord(s, 0, 40)

	if !rec.Available {
		t.Fatal("a null temperature must not make the record unavailable")
	}
	if rec.TempF != nil {
		t.Errorf("TempF = %v, want nil", rec.TempF)
	}
	if rec.CloudPct != 88.6 || rec.WindMph != 22.5 {
		t.Error("other fields should remain populated")
	}
}

func TestBuildRecordDefaultsForMissingArrays(t *testing.T) {
	s := HourlySeries{Times: []string{"2024-01-01T08:00"}}

	rec := BuildRecord(s, 0, 40)

	if !rec.Available {
		t.Fatal("record should be available")
	}
	if rec.TempF != nil {
		t.Errorf("TempF = %v, want nil", rec.TempF)
	}
	if rec.PrecipInHr != 0 || rec.SnowfallInHr != 0 || rec.CloudPct != 0 || rec.WindMph != 0 {
		t.Error("rates and percentages default to zero")
	}
	if want := round(defaultVisMtrs/metersPerMile, 1); rec.VisibilityMi != want {
		t.Errorf("VisibilityMi = %v, want neutral default %v", rec.VisibilityMi, want)
	}
}

func TestBuildRecordWindWarningThreshold(t *testing.T) {
	s := testSeries()
	s.WindMph = []*float64{fp(40.0)}

	if rec := BuildRecord(s, 0, 40); !rec.WindWarning {
		t.Error("wind at exactly the threshold should warn")
	}
	if rec := BuildRecord(s, 0, 40.1); rec.WindWarning {
		t.Error("wind below the threshold should not warn")
	}
}

func TestBuildRecordVisibilityCap(t *testing.T) {
	s := testSeries()
	s.VisibilityMtr = []*float64{fp(500000)}

	if rec := BuildRecord(s, 0, 40); rec.VisibilityMi != 99 {
		t.Errorf("VisibilityMi = %v, want capped at 99", rec.VisibilityMi)
	}
}

func TestCompassDirection(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{0, "N"}, {90, "E"}, {180, "S"}, {270, "W"},
		{22.5, "NNE"}, {350, "N"}, {359, "N"}, {202.5, "SSW"},
	}
	for _, tt := range tests {
		if got := CompassDirection(tt.deg); got != tt.want {
			t.Errorf("CompassDirection(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}

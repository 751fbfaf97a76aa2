package forecast

// HourlySeries holds an hourly forecast time series with parallel value
// arrays, as delivered by a gridded forecast source. Any value array may be
// shorter than Times or contain nils at arbitrary indices; readers substitute
// documented defaults instead of failing the record.
type HourlySeries struct {
	Times []string

	TempF         []*float64
	PrecipIn      []*float64
	RainIn        []*float64
	ShowersIn     []*float64
	SnowfallCm    []*float64
	PrecipCode    []*int
	WeatherCode   []*int
	CloudPct      []*float64
	WindMph       []*float64
	WindDirDeg    []*float64
	VisibilityMtr []*float64
}

// floatAt returns the value at index i, or fallback when the array is too
// short or the entry is nil.
func floatAt(arr []*float64, i int, fallback float64) float64 {
	if i < len(arr) && arr[i] != nil {
		return *arr[i]
	}
	return fallback
}

// floatPtrAt returns the entry at index i, or nil when absent.
func floatPtrAt(arr []*float64, i int) *float64 {
	if i < len(arr) && arr[i] != nil {
		v := *arr[i]
		return &v
	}
	return nil
}

func intPtrAt(arr []*int, i int) *int {
	if i < len(arr) && arr[i] != nil {
		v := *arr[i]
		return &v
	}
	return nil
}

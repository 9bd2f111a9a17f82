package app

import (
	"strconv"

	"potts-mc/internal/core"
)

// TemperatureStep is the factor applied by one Up or Down key press.
const TemperatureStep = 1.1

type temperatureSim interface {
	core.ParameterProvider
	core.FloatParameterSetter
}

// ScaleTemperature multiplies the temperature of sim by factor. It reports
// false when sim exposes no temperature or rejects the new value.
func ScaleTemperature(sim core.Sim, factor float64) bool {
	ts, ok := sim.(temperatureSim)
	if !ok {
		return false
	}
	p, ok := ts.Parameters().Lookup("t")
	if !ok {
		return false
	}
	t, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return false
	}
	return ts.SetFloatParameter("t", t*factor)
}

package lcoe

// CategorySeries holds the pooled LCOE sample for one plot category.
// Values concatenates the imputed low, point and high estimates of every
// member observation, so len(Values) is always 3*Count.
type CategorySeries struct {
	Category string
	Values   []float64
	Mean     float64
	Count    int
}

// Min returns the smallest pooled value.
func (s CategorySeries) Min() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	min := s.Values[0]
	for _, v := range s.Values {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest pooled value.
func (s CategorySeries) Max() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	max := s.Values[0]
	for _, v := range s.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// ExcludedTypes lists the power types left out of the comparison: the
// plot covers new builds of technologically and commercially mature,
// grid-scale power sources, so depreciated plants, carbon capture
// variants, immature designs and distributed sources are skipped.
var ExcludedTypes = map[string]bool{
	"Depreciated Coal":            true,
	"20-30% CCS":                  true,
	"90+% CCS":                    true,
	"IGCC with CCS":               true,
	"Supercritical with CCS":      true,
	"Combustion Turbine":          true,
	"Gas Peaking":                 true,
	"Natural Gas CCS":             true,
	"Diesel Generator":            true,
	"Biomass Microgrid":           true,
	"Incineration with CCS":       true,
	"Depreciated Nuclear":         true,
	"Advanced Nuclear":            true,
	"Small Modular Reactor":       true,
	"Generation IV":               true,
	"Sodium-Cooled Fast Reactor":  true,
	"High Temperature Reactor":    true,
	"Fusion":                      true,
	"Refurbishments":              true,
	"Organic PV":                  true,
	"Solar Updraft Tower":         true,
	"Space-Based Solar":           true,
	"Distributed Solar - Small":   true,
	"Distributed Solar - Large":   true,
	"Community Solar":             true,
	"High Altitude":               true,
	"Wind Microgrid":              true,
	"Enhanced Geothermal System":  true,
	"Hydrothermal Vents":          true,
	"Fuel Cell":                   true,
	"Solid Oxide Fuel Cells":      true,
	"Molten Carbonate Fuel Cells": true,
}

// CategoryOverrides maps a Type to the category used for the plot when it
// differs from the source file. Solar is divided into PV and non-PV, Wind
// into onshore and offshore, Petroleum renamed to Oil and MHK to Ocean.
// Category names carry embedded newlines so axis labels wrap.
var CategoryOverrides = map[string]string{
	"Photovoltaics":                 "Solar PV",
	"Crystalline PV":                "Solar PV",
	"Thin Film PV":                  "Solar PV",
	"Perovskite":                    "Solar PV",
	"Organic PV":                    "Solar PV",
	"PV Fixed":                      "Solar PV",
	"PV 1-Axis Tracking":            "Solar PV",
	"PV 2-Axis Tracking":            "Solar PV",
	"Solar Thermal":                 "Solar,\nNon-PV",
	"Solar Thermal without Storage": "Solar,\nNon-PV",
	"Solar Thermal with Storage":    "Solar,\nNon-PV",
	"Concentrated PV":               "Solar,\nNon-PV", // nonstandard design, grouped with thermal
	"Onshore Wind":                  "Onshore\nWind",
	"Offshore Wind":                 "Offshore\nWind",
	"Deep Offshore":                 "Offshore\nWind",
	"Floating Offshore":             "Offshore\nWind",
	"Offshore Vertical Axis":        "Offshore\nWind",
	"MHK":                           "Ocean",
	"Tidal":                         "Ocean",
	"Wave":                          "Ocean",
	"OTEC":                          "Ocean",
	"Osmotic":                       "Ocean",
	"Oil Power Plant":               "Oil",
}

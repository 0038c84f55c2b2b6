package models

// TariffOption is one purchasable duration inside a zone.
type TariffOption struct {
	Label   string `json:"label" mapstructure:"label"`
	Value   string `json:"value" mapstructure:"value"`
	Price   int    `json:"price" mapstructure:"price"`     // lei
	Code    int    `json:"code" mapstructure:"code"`       // dispatch code sent in the SMS
	Minutes int    `json:"minutes" mapstructure:"minutes"` // derived from Value when omitted
}

// TariffZone is an ordered list of options for one zone.
type TariffZone struct {
	Zone    string         `json:"zone" mapstructure:"zone"`
	Options []TariffOption `json:"options" mapstructure:"options"`
}

// TariffTable maps zones to their options, keeping the configured zone order.
type TariffTable struct {
	Zones []TariffZone `json:"zones"`
}

// Options returns the options configured for zone.
func (t TariffTable) Options(zone string) ([]TariffOption, bool) {
	for _, z := range t.Zones {
		if z.Zone == zone {
			return z.Options, true
		}
	}
	return nil, false
}

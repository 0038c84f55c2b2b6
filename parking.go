package parking_sms

import "parking_sms/internal/models"

// DestinationNumber is the municipal short code that receives parking SMS.
const DestinationNumber = "7480"

// PlatePlaceholder is shown in the message preview while no plate is entered.
const PlatePlaceholder = "NR_MASINA"

// DefaultTariffs returns the built-in Cluj tariff table, used when the
// configuration does not provide one.
func DefaultTariffs() models.TariffTable {
	return models.TariffTable{Zones: []models.TariffZone{
		{
			Zone: "I",
			Options: []models.TariffOption{
				{Label: "30 min", Value: "30m", Price: 4, Code: 403, Minutes: 30},
				{Label: "1 oră", Value: "1h", Price: 8, Code: 404, Minutes: 60},
				{Label: "2 ore", Value: "2h", Price: 16, Code: 405, Minutes: 120},
			},
		},
		{
			Zone: "II",
			Options: []models.TariffOption{
				{Label: "1 oră", Value: "1h", Price: 3, Code: 407, Minutes: 60},
				{Label: "2 ore", Value: "2h", Price: 6, Code: 408, Minutes: 120},
				{Label: "4 ore", Value: "4h", Price: 12, Code: 409, Minutes: 240},
			},
		},
	}}
}

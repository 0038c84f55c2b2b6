package parking

import (
	"time"

	parking_sms "parking_sms"
	"parking_sms/internal/models"
)

// RenderOptions carries the inputs of Render that do not live in State.
type RenderOptions struct {
	Now         time.Time
	Platform    Platform
	Destination string // defaults to parking_sms.DestinationNumber
}

// Render derives the full view from st. It fails only when the selection
// violates the table invariant, which Repair and the reducers prevent.
func Render(st models.State, table models.TariffTable, opts RenderOptions) (models.View, error) {
	opt, err := ResolveTariff(table, st.Zone, st.DurationValue)
	if err != nil {
		return models.View{}, err
	}
	dest := opts.Destination
	if dest == "" {
		dest = parking_sms.DestinationNumber
	}

	v := models.View{
		Zone:           st.Zone,
		DurationValue:  st.DurationValue,
		Plate:          st.Plate,
		Price:          opt.Price,
		Code:           opt.Code,
		MessagePreview: PreviewMessage(opt, st.Plate),
		SendEnabled:    IsSendEnabled(st.Plate),
		SavedPlates:    append([]string{}, st.SavedPlates...),
		Session:        TrackSession(st.LastSession, opts.Now),
	}

	v.ZoneButtons = make([]models.ZoneButton, 0, len(table.Zones))
	for _, z := range table.Zones {
		v.ZoneButtons = append(v.ZoneButtons, models.ZoneButton{Zone: z.Zone, Active: z.Zone == st.Zone})
	}
	zoneOpts, _ := table.Options(st.Zone)
	v.DurationButtons = make([]models.DurationButton, 0, len(zoneOpts))
	for _, o := range zoneOpts {
		v.DurationButtons = append(v.DurationButtons, models.DurationButton{
			Label:  o.Label,
			Value:  o.Value,
			Price:  o.Price,
			Active: o.Value == st.DurationValue,
		})
	}

	if v.SendEnabled {
		v.SMSURI = SMSURI(dest, ComposeMessage(opt, st.Plate), opts.Platform)
	}
	return v, nil
}

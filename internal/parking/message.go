package parking

import (
	"regexp"
	"strconv"
	"strings"

	parking_sms "parking_sms"
	"parking_sms/internal/models"
)

// ComposeMessage builds the SMS body: "<dispatch code> <plate>".
func ComposeMessage(t models.TariffOption, plate string) string {
	return strconv.Itoa(t.Code) + " " + plate
}

// PreviewMessage is ComposeMessage with a placeholder for an empty plate.
// It is for display only; an empty plate never enables sending.
func PreviewMessage(t models.TariffOption, plate string) string {
	if plate == "" {
		plate = parking_sms.PlatePlaceholder
	}
	return ComposeMessage(t, plate)
}

// Platform selects the sms: URI convention of the device opening the link.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

var iosUserAgent = regexp.MustCompile(`iPad|iPhone|iPod`)

// DetectPlatform guesses the platform from a User-Agent header.
func DetectPlatform(userAgent string) Platform {
	if iosUserAgent.MatchString(userAgent) {
		return PlatformIOS
	}
	return PlatformAndroid
}

// ParsePlatform accepts "ios" or "android" (case-insensitive).
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformIOS:
		return PlatformIOS, true
	case PlatformAndroid:
		return PlatformAndroid, true
	}
	return "", false
}

// iOS pre-fills the body with "&body=", everything else with "?body=".
func (p Platform) separator() string {
	if p == PlatformIOS {
		return "&"
	}
	return "?"
}

// SMSURI builds the link that opens the messaging app with message pre-filled.
func SMSURI(destination, message string, p Platform) string {
	return "sms:" + destination + p.separator() + "body=" + encodeURIComponent(message)
}

const upperHex = "0123456789ABCDEF"

// encodeURIComponent mirrors the browser function: everything except
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded as UTF-8.
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func isURIComponentSafe(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

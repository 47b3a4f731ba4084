package domain

import (
	"errors"
	"strings"
)

// ErrInvalidMSISDN indicates a phone number that cannot be normalized to a
// supported Safaricom subscriber number.
var ErrInvalidMSISDN = errors.New("invalid msisdn")

const countryCode = "254"

// Safaricom subscriber numbers start with 7 or 1 after the country code.
var subscriberPrefixes = []string{"7", "1"}

// NormalizeMSISDN converts user-entered phone numbers to international
// MSISDN form without a leading plus: 254XXXXXXXXX.
//
// Accepted inputs: 0712345678, 0112345678, 712345678, 254712345678,
// +254712345678, with incidental spaces or dashes.
func NormalizeMSISDN(raw string) (string, error) {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	s = strings.TrimPrefix(s, "+")

	if s == "" || !isDigits(s) {
		return "", ErrInvalidMSISDN
	}

	var subscriber string
	switch {
	case len(s) == 12 && strings.HasPrefix(s, countryCode):
		subscriber = s[len(countryCode):]
	case len(s) == 10 && strings.HasPrefix(s, "0"):
		subscriber = s[1:]
	case len(s) == 9:
		subscriber = s
	default:
		return "", ErrInvalidMSISDN
	}

	for _, p := range subscriberPrefixes {
		if strings.HasPrefix(subscriber, p) {
			return countryCode + subscriber, nil
		}
	}
	return "", ErrInvalidMSISDN
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package validity

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// Valid e-mail address production from the HTML living standard.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

	// Absolute URL: a scheme followed by a colon and no whitespace.
	urlRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:\S*$`)
)

// typeFormats maps an input type to the check its value must pass.
// Types without an entry can never mismatch.
var typeFormats = map[string]func(value string, multiple bool) bool{
	"email":  validEmail,
	"url":    validURL,
	"number": validNumber,
}

func validEmail(value string, multiple bool) bool {
	if !multiple {
		return emailRegex.MatchString(value)
	}
	for addr := range strings.SplitSeq(value, ",") {
		if !emailRegex.MatchString(trimASCIISpace(addr)) {
			return false
		}
	}
	return true
}

func validURL(value string, _ bool) bool {
	if !urlRegex.MatchString(value) {
		return false
	}
	u, err := url.Parse(value)
	return err == nil && u.Scheme != ""
}

func validNumber(value string, _ bool) bool {
	_, err := parseNumber(value)
	return err == nil
}

package entities

import (
	"regexp"
	"strings"
)

// publicEmailDomains lists the registrable labels of known free/consumer
// webmail providers, including the common French ISPs.
var publicEmailDomains = []string{
	"gmail",
	"googlemail",
	"yahoo",
	"ymail",
	"rocketmail",
	"hotmail",
	"live",
	"outlook",
	"msn",
	"windowslive",
	"sfr",
	"neuf",
	"club-internet",
	"cegetel",
	"free",
	"aliceadsl",
	"orange",
	"wanadoo",
	"voila",
	"laposte",
	"bbox",
	"numericable",
	"noos",
	"aol",
	"aim",
	"icloud",
	"me",
	"mac",
	"protonmail",
	"proton",
	"gmx",
	"yandex",
	"mail",
	"zoho",
}

// The match is anchored on "@<label>." so only the domain label directly
// after the @ is tested. A label that merely starts a longer domain, such
// as mail.corp.com, still matches; keep that behavior for compatibility.
var publicEmailPattern = regexp.MustCompile(
	`(?i)@(` + strings.Join(publicEmailDomains, "|") + `)\.`)

// IsOrganizationalEmail reports whether the address does not belong to a
// known free/consumer provider. Malformed addresses never match the
// pattern and are therefore treated as organizational.
func IsOrganizationalEmail(email string) bool {
	return !publicEmailPattern.MatchString(email)
}

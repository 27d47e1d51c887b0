package encoder

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// fallbackLocale is used if the user's locale cannot be detected.
const fallbackLocale = "en-US"

// LocaleFromEnvironment returns the user's locale, as configured by the
// operating system environment (LC_ALL, LANG, etc.).
// If no locale can be detected, "en-US" is returned.
func LocaleFromEnvironment() language.Tag {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		CT().Errorf("cannot detect user locale: %v", err)
		userLocale = fallbackLocale
		CT().Infof("morse encoder sets default user locale %v", userLocale)
	} else {
		CT().Infof("morse encoder detected user locale %v", userLocale)
	}
	tag, err := language.Parse(userLocale)
	if err != nil {
		CT().Errorf("cannot interpret user locale %q: %v", userLocale, err)
		return language.Make(fallbackLocale)
	}
	return tag
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n localizes the dashboard's own strings and picks the locale
// sent to the gateway, which localizes its error details server-side.
//
// Supported locales are English, German, and Spanish. Anything else falls
// back to English via standard BCP 47 matching.
package i18n

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// supported lists the locales the dashboard ships strings for. The first
// entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var (
	mu      sync.RWMutex
	current = language.English
)

// Detect resolves a locale preference to a supported tag. The preference
// can be a BCP 47 tag ("de-AT"), a POSIX locale ("es_MX.UTF-8"), or empty,
// in which case the LANG/LC_ALL environment is consulted.
func Detect(pref string) language.Tag {
	if pref == "" {
		pref = os.Getenv("LC_ALL")
	}
	if pref == "" {
		pref = os.Getenv("LANG")
	}
	// POSIX locales carry an encoding suffix the parser rejects.
	if i := strings.IndexByte(pref, '.'); i >= 0 {
		pref = pref[:i]
	}
	pref = strings.ReplaceAll(pref, "_", "-")

	tag, err := language.Parse(pref)
	if err != nil {
		return language.English
	}
	matched, _, _ := matcher.Match(tag)
	// Matcher may return a refined tag (e.g. de-u-rg-atzzzz); collapse to
	// the base we actually have strings for.
	base, _ := matched.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return s
		}
	}
	return language.English
}

// SetLocale installs the active locale for T lookups.
func SetLocale(tag language.Tag) {
	mu.Lock()
	current = tag
	mu.Unlock()
}

// Locale returns the active locale tag.
func Locale() language.Tag {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AcceptLanguage returns the value to send as the Accept-Language header.
func AcceptLanguage() string {
	return Locale().String()
}

// T returns the translation for key in the active locale. Unknown keys
// return the key itself so a missing string is visible, not silent.
func T(key string) string {
	mu.RLock()
	tag := current
	mu.RUnlock()

	if m, ok := catalog[tag]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := catalog[language.English][key]; ok {
		return s
	}
	return key
}

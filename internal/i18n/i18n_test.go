// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		pref string
		want language.Tag
	}{
		{"plain english", "en", language.English},
		{"german region", "de-AT", language.German},
		{"posix locale with encoding", "es_MX.UTF-8", language.Spanish},
		{"unsupported falls back", "fr", language.English},
		{"garbage falls back", "not-a-locale!!", language.English},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.pref); got != tc.want {
				t.Errorf("Detect(%q) = %v, want %v", tc.pref, got, tc.want)
			}
		})
	}
}

func TestT_LocaleSwitch(t *testing.T) {
	defer SetLocale(language.English)

	SetLocale(language.German)
	if got := T("docs.title"); got != "Dokumente" {
		t.Errorf("german docs.title = %q", got)
	}

	SetLocale(language.Spanish)
	if got := T("docs.title"); got != "Documentos" {
		t.Errorf("spanish docs.title = %q", got)
	}

	SetLocale(language.English)
	if got := T("docs.title"); got != "Documents" {
		t.Errorf("english docs.title = %q", got)
	}
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	defer SetLocale(language.English)
	SetLocale(language.German)

	if got := T("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key should echo back, got %q", got)
	}
}

func TestAcceptLanguage(t *testing.T) {
	defer SetLocale(language.English)
	SetLocale(language.German)

	if got := AcceptLanguage(); got != "de" {
		t.Errorf("AcceptLanguage() = %q, want %q", got, "de")
	}
}

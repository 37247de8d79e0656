// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package i18n

import "testing"

func TestNew(t *testing.T) {
	t.Run("new i18n provider with empty locale string succeeds", func(t *testing.T) {
		provider, err := New("")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		if provider == nil {
			t.Fatal("expected i18n provider to be non-nil")
		}
	})
	t.Run("catalogues are translated", func(t *testing.T) {
		tests := []struct {
			locale string
			msgID  string
			want   string
		}{
			{"de", "Precipitation (mm)", "Niederschlag (mm)"},
			{"de-AT", "Date", "Datum"},
			{"sv", "Wind Speed", "Vindhastighet"},
			{"sv-SE", "Enter the first location: ", "Ange den första platsen: "},
			{"en", "Humidity (%)", "Humidity (%)"},
		}
		for _, tc := range tests {
			t.Run(tc.locale, func(t *testing.T) {
				provider, err := New(tc.locale)
				if err != nil {
					t.Fatalf("failed to create i18n provider: %s", err)
				}
				if got := provider.Get(tc.msgID); got != tc.want {
					t.Errorf("expected %q to be translated to %q, got %q", tc.msgID, tc.want, got)
				}
			})
		}
	})
	t.Run("formatted messages are translated", func(t *testing.T) {
		provider, err := New("de")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		want := "Wettervergleich für Berlin und Hamburg"
		if got := provider.Getf("Weather comparison for %s and %s", "Berlin", "Hamburg"); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
	t.Run("unsupported language falls back to English", func(t *testing.T) {
		provider, err := New("fr")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		if got := provider.Get("Date"); got != "Date" {
			t.Errorf("expected %q, got %q", "Date", got)
		}
	})
}

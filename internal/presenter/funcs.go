// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/humanize"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"timeFormat":        p.timeFormat,
		"localizedTime":     p.localizedTime,
		"localizedDateTime": p.localizedDateTime,
		"floatFormat":       p.floatFormat,
		"loc":               p.loc,
		"pad":               p.pad,
		"lc":                strings.ToLower,
		"uc":                strings.ToUpper,
	}
}

func (p *Presenter) loc(val string) string {
	val = strings.ToLower(val)
	if raw, ok := i18nVars[val]; ok {
		return p.localizer.Get(raw)
	}
	return val
}

func (p *Presenter) localizedTime(val time.Time) string {
	return p.humanizer.FormatTime(val, humanize.TimeFormat)
}

func (p *Presenter) localizedDateTime(val time.Time) string {
	return p.humanizer.FormatTime(val, humanize.DateTimeFormat)
}

func (p *Presenter) timeFormat(val time.Time, fmt string) string {
	return val.Format(fmt)
}

func (p *Presenter) floatFormat(val float64, precision int) string {
	return strconv.FormatFloat(val, 'f', precision, 64)
}

// pad fills val with spaces up to the given display width, counting wide runes twice.
func (p *Presenter) pad(val string, width int) string {
	return runewidth.FillRight(val, width)
}

package domain

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// UnknownRemark is returned for present-weather codes outside 00-99.
const UnknownRemark = "Unknown"

//go:embed ww4677.toml
var ww4677 string

type remarkEntry struct {
	Description string `toml:"description"`
	Icon        string `toml:"icon"`
}

type remarkTable struct {
	WW map[string]remarkEntry `toml:"ww"`
}

// remarks is read-only after package initialization.
var remarks = mustLoadRemarks(ww4677)

func mustLoadRemarks(doc string) map[string]remarkEntry {
	table, err := loadRemarks(doc)
	if err != nil {
		panic(err)
	}
	return table
}

func loadRemarks(doc string) (map[string]remarkEntry, error) {
	var t remarkTable
	if _, err := toml.Decode(doc, &t); err != nil {
		return nil, fmt.Errorf("decode weather remarks: %w", err)
	}
	if len(t.WW) == 0 {
		return nil, fmt.Errorf("decode weather remarks: no [ww] entries")
	}
	return t.WW, nil
}

// WeatherRemark describes a present-weather code. Blank input yields "".
func WeatherRemark(code string) string {
	e, ok := lookupRemark(code)
	if !ok {
		if isBlank(code) {
			return ""
		}
		return UnknownRemark
	}
	return e.Description
}

// WeatherIcon returns a display symbol for a present-weather code, or "" if unknown.
func WeatherIcon(code string) string {
	e, _ := lookupRemark(code)
	return e.Icon
}

func lookupRemark(code string) (remarkEntry, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || n < 0 || n > 99 {
		return remarkEntry{}, false
	}
	e, ok := remarks[fmt.Sprintf("%02d", n)]
	return e, ok
}

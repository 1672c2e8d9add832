package domain

import (
	"sort"
	"strings"
)

// Country is a headline-capable country: ISO 3166 alpha-2 code and English name.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var countryTable = []Country{
	{"ae", "United Arab Emirates"},
	{"ar", "Argentina"},
	{"at", "Austria"},
	{"au", "Australia"},
	{"be", "Belgium"},
	{"bg", "Bulgaria"},
	{"br", "Brazil"},
	{"ca", "Canada"},
	{"ch", "Switzerland"},
	{"cn", "China"},
	{"co", "Colombia"},
	{"cu", "Cuba"},
	{"cz", "Czech Republic"},
	{"de", "Germany"},
	{"eg", "Egypt"},
	{"fr", "France"},
	{"gb", "United Kingdom"},
	{"gr", "Greece"},
	{"hk", "Hong Kong"},
	{"hu", "Hungary"},
	{"id", "Indonesia"},
	{"ie", "Ireland"},
	{"il", "Israel"},
	{"in", "India"},
	{"it", "Italy"},
	{"jp", "Japan"},
	{"kr", "South Korea"},
	{"lt", "Lithuania"},
	{"lv", "Latvia"},
	{"ma", "Morocco"},
	{"mx", "Mexico"},
	{"my", "Malaysia"},
	{"ng", "Nigeria"},
	{"nl", "Netherlands"},
	{"no", "Norway"},
	{"nz", "New Zealand"},
	{"ph", "Philippines"},
	{"pl", "Poland"},
	{"pt", "Portugal"},
	{"ro", "Romania"},
	{"rs", "Serbia"},
	{"ru", "Russia"},
	{"sa", "Saudi Arabia"},
	{"se", "Sweden"},
	{"sg", "Singapore"},
	{"si", "Slovenia"},
	{"sk", "Slovakia"},
	{"th", "Thailand"},
	{"tr", "Turkey"},
	{"tw", "Taiwan"},
	{"ua", "Ukraine"},
	{"us", "United States"},
	{"ve", "Venezuela"},
	{"za", "South Africa"},
}

var countryAliases = map[string]string{
	"uk":         "gb",
	"britain":    "gb",
	"england":    "gb",
	"usa":        "us",
	"america":    "us",
	"uae":        "ae",
	"korea":      "kr",
	"the us":     "us",
	"the uk":     "gb",
	"holland":    "nl",
	"czechia":    "cz",
	"turkiye":    "tr",
	"the states": "us",
}

// CountryDirectory resolves free-text country names to headline country codes.
// It is read-only once built and safe for concurrent use.
type CountryDirectory struct {
	countries []Country
	byCode    map[string]Country
	aliases   map[string]string
}

func NewCountryDirectory() *CountryDirectory {
	d := &CountryDirectory{
		countries: make([]Country, len(countryTable)),
		byCode:    make(map[string]Country, len(countryTable)),
		aliases:   make(map[string]string, len(countryAliases)),
	}
	copy(d.countries, countryTable)
	sort.Slice(d.countries, func(i, j int) bool { return d.countries[i].Code < d.countries[j].Code })
	for _, c := range d.countries {
		d.byCode[c.Code] = c
	}
	for k, v := range countryAliases {
		d.aliases[k] = v
	}
	return d
}

// Resolve maps a name or code to a country code. Lookup order: two-letter
// code, alias, exact name (case-insensitive), then substring containment in
// either direction. Codes are tried in alphabetical order so the result is
// deterministic.
func (d *CountryDirectory) Resolve(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}

	if len(key) == 2 {
		if c, ok := d.byCode[key]; ok {
			return c.Code, true
		}
	}
	if code, ok := d.aliases[key]; ok {
		return code, true
	}
	for _, c := range d.countries {
		if strings.ToLower(c.Name) == key {
			return c.Code, true
		}
	}
	// Two-letter fragments match too many names.
	if len(key) < 3 {
		return "", false
	}
	for _, c := range d.countries {
		lower := strings.ToLower(c.Name)
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return c.Code, true
		}
	}
	return "", false
}

// Name returns the display name for a code.
func (d *CountryDirectory) Name(code string) (string, bool) {
	c, ok := d.byCode[strings.ToLower(code)]
	return c.Name, ok
}

// Countries returns a copy of the directory sorted by code.
func (d *CountryDirectory) Countries() []Country {
	out := make([]Country, len(d.countries))
	copy(out, d.countries)
	return out
}

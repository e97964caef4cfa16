package schema

import "strings"

// nationNames maps FIFA style three-letter codes to country names.
var nationNames = map[string]string{
	"ALG": "Algeria",
	"ARG": "Argentina",
	"AUS": "Australia",
	"AUT": "Austria",
	"BEL": "Belgium",
	"BIH": "Bosnia and Herzegovina",
	"BRA": "Brazil",
	"BFA": "Burkina Faso",
	"CAN": "Canada",
	"CHI": "Chile",
	"CIV": "Côte d'Ivoire",
	"CMR": "Cameroon",
	"COD": "DR Congo",
	"COL": "Colombia",
	"CRO": "Croatia",
	"CZE": "Czechia",
	"DEN": "Denmark",
	"ECU": "Ecuador",
	"EGY": "Egypt",
	"ENG": "England",
	"ESP": "Spain",
	"FRA": "France",
	"GAB": "Gabon",
	"GER": "Germany",
	"GHA": "Ghana",
	"GRE": "Greece",
	"GRN": "Grenada",
	"GUI": "Guinea",
	"HUN": "Hungary",
	"IRL": "Republic of Ireland",
	"ISL": "Iceland",
	"ISR": "Israel",
	"ITA": "Italy",
	"JAM": "Jamaica",
	"JPN": "Japan",
	"KOR": "South Korea",
	"MAR": "Morocco",
	"MEX": "Mexico",
	"MLI": "Mali",
	"NED": "Netherlands",
	"NGA": "Nigeria",
	"NIR": "Northern Ireland",
	"NOR": "Norway",
	"NZL": "New Zealand",
	"PAR": "Paraguay",
	"POL": "Poland",
	"POR": "Portugal",
	"SCO": "Scotland",
	"SEN": "Senegal",
	"SRB": "Serbia",
	"SUI": "Switzerland",
	"SVK": "Slovakia",
	"SWE": "Sweden",
	"TUN": "Tunisia",
	"TUR": "Türkiye",
	"UKR": "Ukraine",
	"URU": "Uruguay",
	"USA": "United States",
	"WAL": "Wales",
	"ZAM": "Zambia",
	"ZIM": "Zimbabwe",
}

// NationName maps a nation code to its full name. FBref style values such as
// "eng ENG" are looked up by their last token. Values that are not a known code
// (including names that were already mapped) are returned unchanged.
func NationName(raw string) string {
	value := strings.TrimSpace(raw)
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return value
	}
	code := strings.ToUpper(fields[len(fields)-1])
	if name, ok := nationNames[code]; ok {
		return name
	}
	return value
}

// PrimaryPosition keeps the part of a multi-position value before the first comma.
func PrimaryPosition(raw string) string {
	value, _, _ := strings.Cut(raw, ",")
	return strings.TrimSpace(value)
}

package geo

// provinceNameMap translates dataset province names (ASCII, Castilian
// only) to the names used by the boundary GeoJSON (accented, bilingual
// where co-official). Names missing from the map are already equal in
// both sources.
var provinceNameMap = map[string]string{
	"Leon":                   "León",
	"A Coruna":               "A Coruña",
	"Bizkaia":                "Bizkaia/Vizcaya",
	"Gipuzkoa":               "Gipuzkoa/Guipúzcoa",
	"Alava":                  "Araba/Álava",
	"Avila":                  "Ávila",
	"Caceres":                "Cáceres",
	"Cordoba":                "Córdoba",
	"Jaen":                   "Jaén",
	"Malaga":                 "Málaga",
	"Cadiz":                  "Cádiz",
	"Almeria":                "Almería",
	"Valencia":               "València/Valencia",
	"Alicante":               "Alacant/Alicante",
	"Castellon":              "Castelló/Castellón",
	"Islas Baleares":         "Illes Balears",
	"Santa Cruz de Tenerife": "Santa Cruz De Tenerife",
}

// NormalizeProvince maps a dataset province name to its GeoJSON
// counterpart, falling back to the input when no mapping exists.
func NormalizeProvince(name string) string {
	if mapped, ok := provinceNameMap[name]; ok {
		return mapped
	}
	return name
}

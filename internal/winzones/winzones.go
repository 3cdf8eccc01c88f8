// Package winzones maps between Windows time zone display names and IANA
// zone identifiers.
//
// The data is derived from the Unicode CLDR windowsZones.xml supplemental
// file, which is also the source of the zone index Microsoft documents at
// https://docs.microsoft.com/en-us/windows-hardware/manufacture/desktop/default-time-zones.
// Both lookup tables are initialized once and never mutated afterwards.
package winzones

import "sort"

// winToIANA maps a Windows zone name to the IANA zone identifiers it
// covers. The first entry is the canonical ("001" territory) mapping.
var winToIANA = map[string][]string{
	"Dateline Standard Time":          {"Etc/GMT+12"},
	"UTC-11":                          {"Etc/GMT+11", "Pacific/Midway", "Pacific/Niue", "Pacific/Pago_Pago"},
	"Hawaiian Standard Time":          {"Pacific/Honolulu", "Pacific/Johnston", "Pacific/Rarotonga", "Pacific/Tahiti"},
	"Alaskan Standard Time":           {"America/Anchorage", "America/Juneau", "America/Metlakatla", "America/Nome", "America/Sitka", "America/Yakutat"},
	"Pacific Standard Time (Mexico)":  {"America/Tijuana", "America/Santa_Isabel"},
	"Pacific Standard Time":           {"America/Los_Angeles", "America/Vancouver", "PST8PDT"},
	"US Mountain Standard Time":       {"America/Phoenix", "America/Creston", "America/Dawson_Creek", "America/Hermosillo", "Etc/GMT+7"},
	"Mountain Standard Time (Mexico)": {"America/Chihuahua", "America/Mazatlan"},
	"Mountain Standard Time":          {"America/Denver", "America/Boise", "America/Edmonton", "America/Cambridge_Bay", "America/Inuvik", "America/Yellowknife", "MST7MDT"},
	"Central America Standard Time":   {"America/Guatemala", "America/Belize", "America/Costa_Rica", "America/El_Salvador", "America/Managua", "America/Tegucigalpa", "Pacific/Galapagos", "Etc/GMT+6"},
	"Central Standard Time":           {"America/Chicago", "America/Indiana/Knox", "America/Indiana/Tell_City", "America/Matamoros", "America/Menominee", "America/North_Dakota/Center", "America/Rainy_River", "America/Winnipeg", "America/Resolute", "CST6CDT"},
	"Central Standard Time (Mexico)":  {"America/Mexico_City", "America/Bahia_Banderas", "America/Merida", "America/Monterrey"},
	"Canada Central Standard Time":    {"America/Regina", "America/Swift_Current"},
	"SA Pacific Standard Time":        {"America/Bogota", "America/Cayman", "America/Coral_Harbour", "America/Eirunepe", "America/Guayaquil", "America/Jamaica", "America/Lima", "America/Panama", "America/Rio_Branco", "Etc/GMT+5"},
	"Eastern Standard Time":           {"America/New_York", "America/Detroit", "America/Indiana/Petersburg", "America/Indiana/Vincennes", "America/Indiana/Winamac", "America/Iqaluit", "America/Kentucky/Monticello", "America/Louisville", "America/Montreal", "America/Nassau", "America/Nipigon", "America/Pangnirtung", "America/Port-au-Prince", "America/Thunder_Bay", "America/Toronto", "EST5EDT"},
	"US Eastern Standard Time":        {"America/Indiana/Indianapolis", "America/Indiana/Marengo", "America/Indiana/Vevay", "America/Indianapolis"},
	"Venezuela Standard Time":         {"America/Caracas"},
	"Paraguay Standard Time":          {"America/Asuncion"},
	"Atlantic Standard Time":          {"America/Halifax", "America/Glace_Bay", "America/Goose_Bay", "America/Moncton", "America/Thule", "Atlantic/Bermuda"},
	"Central Brazilian Standard Time": {"America/Cuiaba", "America/Campo_Grande"},
	"SA Western Standard Time":        {"America/La_Paz", "America/Anguilla", "America/Antigua", "America/Aruba", "America/Barbados", "America/Blanc-Sablon", "America/Boa_Vista", "America/Curacao", "America/Dominica", "America/Grand_Turk", "America/Grenada", "America/Guadeloupe", "America/Guyana", "America/Kralendijk", "America/Lower_Princes", "America/Manaus", "America/Marigot", "America/Martinique", "America/Montserrat", "America/Port_of_Spain", "America/Porto_Velho", "America/Puerto_Rico", "America/Santo_Domingo", "America/St_Barthelemy", "America/St_Kitts", "America/St_Lucia", "America/St_Thomas", "America/St_Vincent", "America/Tortola", "Etc/GMT+4"},
	"Newfoundland Standard Time":      {"America/St_Johns"},
	"E. South America Standard Time":  {"America/Sao_Paulo"},
	"Argentina Standard Time":         {"America/Buenos_Aires", "America/Argentina/Buenos_Aires", "America/Argentina/Catamarca", "America/Argentina/Cordoba", "America/Argentina/Jujuy", "America/Argentina/La_Rioja", "America/Argentina/Mendoza", "America/Argentina/Rio_Gallegos", "America/Argentina/Salta", "America/Argentina/San_Juan", "America/Argentina/San_Luis", "America/Argentina/Tucuman", "America/Argentina/Ushuaia", "America/Catamarca", "America/Cordoba", "America/Jujuy", "America/Mendoza"},
	"SA Eastern Standard Time":        {"America/Cayenne", "America/Araguaina", "America/Belem", "America/Fortaleza", "America/Maceio", "America/Paramaribo", "America/Recife", "America/Santarem", "Antarctica/Rothera", "Atlantic/Stanley", "Etc/GMT+3"},
	"Greenland Standard Time":         {"America/Godthab"},
	"Montevideo Standard Time":        {"America/Montevideo"},
	"Bahia Standard Time":             {"America/Bahia"},
	"UTC-02":                          {"Etc/GMT+2", "America/Noronha", "Atlantic/South_Georgia"},
	"Azores Standard Time":            {"Atlantic/Azores", "America/Scoresbysund"},
	"Cape Verde Standard Time":        {"Atlantic/Cape_Verde", "Etc/GMT+1"},
	"UTC":                             {"Etc/UTC", "UTC", "Etc/GMT", "America/Danmarkshavn"},
	"GMT Standard Time":               {"Europe/London", "Atlantic/Canary", "Atlantic/Faeroe", "Atlantic/Madeira", "Europe/Dublin", "Europe/Guernsey", "Europe/Isle_of_Man", "Europe/Jersey", "Europe/Lisbon"},
	"Greenwich Standard Time":         {"Atlantic/Reykjavik", "Africa/Abidjan", "Africa/Accra", "Africa/Bamako", "Africa/Banjul", "Africa/Bissau", "Africa/Conakry", "Africa/Dakar", "Africa/Freetown", "Africa/Lome", "Africa/Monrovia", "Africa/Nouakchott", "Africa/Ouagadougou", "Africa/Sao_Tome", "Atlantic/St_Helena"},
	"Morocco Standard Time":           {"Africa/Casablanca", "Africa/El_Aaiun"},
	"W. Europe Standard Time":         {"Europe/Berlin", "Arctic/Longyearbyen", "Europe/Amsterdam", "Europe/Andorra", "Europe/Busingen", "Europe/Gibraltar", "Europe/Luxembourg", "Europe/Malta", "Europe/Monaco", "Europe/Oslo", "Europe/Rome", "Europe/San_Marino", "Europe/Stockholm", "Europe/Vaduz", "Europe/Vatican", "Europe/Vienna", "Europe/Zurich"},
	"Central Europe Standard Time":    {"Europe/Budapest", "Europe/Belgrade", "Europe/Bratislava", "Europe/Ljubljana", "Europe/Podgorica", "Europe/Prague", "Europe/Tirane"},
	"Romance Standard Time":           {"Europe/Paris", "Africa/Ceuta", "Europe/Brussels", "Europe/Copenhagen", "Europe/Madrid"},
	"Central European Standard Time":  {"Europe/Warsaw", "Europe/Sarajevo", "Europe/Skopje", "Europe/Zagreb"},
	"W. Central Africa Standard Time": {"Africa/Lagos", "Africa/Algiers", "Africa/Bangui", "Africa/Brazzaville", "Africa/Douala", "Africa/Kinshasa", "Africa/Libreville", "Africa/Luanda", "Africa/Malabo", "Africa/Ndjamena", "Africa/Niamey", "Africa/Porto-Novo", "Africa/Tunis", "Etc/GMT-1"},
	"Namibia Standard Time":           {"Africa/Windhoek"},
	"GTB Standard Time":               {"Europe/Bucharest", "Asia/Nicosia", "Europe/Athens", "Europe/Chisinau"},
	"Middle East Standard Time":       {"Asia/Beirut"},
	"Egypt Standard Time":             {"Africa/Cairo"},
	"Syria Standard Time":             {"Asia/Damascus"},
	"E. Europe Standard Time":         {"Europe/Chisinau"},
	"South Africa Standard Time":      {"Africa/Johannesburg", "Africa/Blantyre", "Africa/Bujumbura", "Africa/Gaborone", "Africa/Harare", "Africa/Kigali", "Africa/Lubumbashi", "Africa/Lusaka", "Africa/Maputo", "Africa/Maseru", "Africa/Mbabane", "Etc/GMT-2"},
	"FLE Standard Time":               {"Europe/Kiev", "Europe/Helsinki", "Europe/Mariehamn", "Europe/Riga", "Europe/Sofia", "Europe/Tallinn", "Europe/Uzhgorod", "Europe/Vilnius", "Europe/Zaporozhye"},
	"Turkey Standard Time":            {"Europe/Istanbul"},
	"Israel Standard Time":            {"Asia/Jerusalem"},
	"Kaliningrad Standard Time":       {"Europe/Kaliningrad"},
	"Jordan Standard Time":            {"Asia/Amman"},
	"Arabic Standard Time":            {"Asia/Baghdad"},
	"Arab Standard Time":              {"Asia/Riyadh", "Asia/Aden", "Asia/Bahrain", "Asia/Kuwait", "Asia/Qatar"},
	"Belarus Standard Time":           {"Europe/Minsk"},
	"Russian Standard Time":           {"Europe/Moscow", "Europe/Simferopol", "Europe/Volgograd"},
	"E. Africa Standard Time":         {"Africa/Nairobi", "Africa/Addis_Ababa", "Africa/Asmera", "Africa/Dar_es_Salaam", "Africa/Djibouti", "Africa/Juba", "Africa/Kampala", "Africa/Khartoum", "Africa/Mogadishu", "Antarctica/Syowa", "Indian/Antananarivo", "Indian/Comoro", "Indian/Mayotte", "Etc/GMT-3"},
	"Iran Standard Time":              {"Asia/Tehran"},
	"Arabian Standard Time":           {"Asia/Dubai", "Asia/Muscat", "Etc/GMT-4"},
	"Azerbaijan Standard Time":        {"Asia/Baku"},
	"Russia Time Zone 3":              {"Europe/Samara"},
	"Mauritius Standard Time":         {"Indian/Mauritius", "Indian/Mahe", "Indian/Reunion"},
	"Georgian Standard Time":          {"Asia/Tbilisi"},
	"Caucasus Standard Time":          {"Asia/Yerevan"},
	"Afghanistan Standard Time":       {"Asia/Kabul"},
	"West Asia Standard Time":         {"Asia/Tashkent", "Antarctica/Mawson", "Asia/Aqtau", "Asia/Aqtobe", "Asia/Ashgabat", "Asia/Dushanbe", "Asia/Oral", "Asia/Samarkand", "Indian/Kerguelen", "Indian/Maldives", "Etc/GMT-5"},
	"Ekaterinburg Standard Time":      {"Asia/Yekaterinburg"},
	"Pakistan Standard Time":          {"Asia/Karachi"},
	"India Standard Time":             {"Asia/Calcutta", "Asia/Kolkata"},
	"Sri Lanka Standard Time":         {"Asia/Colombo"},
	"Nepal Standard Time":             {"Asia/Katmandu", "Asia/Kathmandu"},
	"Central Asia Standard Time":      {"Asia/Almaty", "Antarctica/Vostok", "Asia/Bishkek", "Asia/Qyzylorda", "Indian/Chagos", "Etc/GMT-6"},
	"Bangladesh Standard Time":        {"Asia/Dhaka", "Asia/Thimphu"},
	"N. Central Asia Standard Time":   {"Asia/Novosibirsk", "Asia/Omsk"},
	"Myanmar Standard Time":           {"Asia/Rangoon", "Asia/Yangon", "Indian/Cocos"},
	"SE Asia Standard Time":           {"Asia/Bangkok", "Antarctica/Davis", "Asia/Hovd", "Asia/Jakarta", "Asia/Phnom_Penh", "Asia/Pontianak", "Asia/Saigon", "Asia/Ho_Chi_Minh", "Asia/Vientiane", "Indian/Christmas", "Etc/GMT-7"},
	"North Asia Standard Time":        {"Asia/Krasnoyarsk", "Asia/Novokuznetsk"},
	"China Standard Time":             {"Asia/Shanghai", "Asia/Chongqing", "Asia/Harbin", "Asia/Hong_Kong", "Asia/Kashgar", "Asia/Macau", "Asia/Urumqi"},
	"North Asia East Standard Time":   {"Asia/Irkutsk", "Asia/Chita"},
	"Singapore Standard Time":         {"Asia/Singapore", "Asia/Brunei", "Asia/Kuala_Lumpur", "Asia/Kuching", "Asia/Makassar", "Asia/Manila", "Etc/GMT-8"},
	"W. Australia Standard Time":      {"Australia/Perth", "Antarctica/Casey"},
	"Taipei Standard Time":            {"Asia/Taipei"},
	"Ulaanbaatar Standard Time":       {"Asia/Ulaanbaatar", "Asia/Choibalsan"},
	"Tokyo Standard Time":             {"Asia/Tokyo", "Asia/Dili", "Asia/Jayapura", "Pacific/Palau", "Etc/GMT-9"},
	"Korea Standard Time":             {"Asia/Seoul", "Asia/Pyongyang"},
	"Yakutsk Standard Time":           {"Asia/Yakutsk", "Asia/Khandyga"},
	"Cen. Australia Standard Time":    {"Australia/Adelaide", "Australia/Broken_Hill"},
	"AUS Central Standard Time":       {"Australia/Darwin"},
	"E. Australia Standard Time":      {"Australia/Brisbane", "Australia/Lindeman"},
	"AUS Eastern Standard Time":       {"Australia/Sydney", "Australia/Melbourne"},
	"West Pacific Standard Time":      {"Pacific/Port_Moresby", "Antarctica/DumontDUrville", "Pacific/Guam", "Pacific/Saipan", "Pacific/Truk", "Etc/GMT-10"},
	"Tasmania Standard Time":          {"Australia/Hobart", "Australia/Currie"},
	"Vladivostok Standard Time":       {"Asia/Vladivostok", "Asia/Sakhalin", "Asia/Ust-Nera"},
	"Central Pacific Standard Time":   {"Pacific/Guadalcanal", "Antarctica/Macquarie", "Pacific/Efate", "Pacific/Kosrae", "Pacific/Noumea", "Pacific/Ponape", "Etc/GMT-11"},
	"Russia Time Zone 10":             {"Asia/Srednekolymsk"},
	"Magadan Standard Time":           {"Asia/Magadan", "Asia/Anadyr", "Asia/Kamchatka"},
	"New Zealand Standard Time":       {"Pacific/Auckland", "Antarctica/McMurdo"},
	"UTC+12":                          {"Etc/GMT-12", "Pacific/Funafuti", "Pacific/Kwajalein", "Pacific/Majuro", "Pacific/Nauru", "Pacific/Tarawa", "Pacific/Wake", "Pacific/Wallis"},
	"Fiji Standard Time":              {"Pacific/Fiji"},
	"Tonga Standard Time":             {"Pacific/Tongatapu", "Pacific/Enderbury", "Pacific/Fakaofo", "Etc/GMT-13"},
	"Samoa Standard Time":             {"Pacific/Apia"},
	"Line Islands Standard Time":      {"Pacific/Kiritimati", "Etc/GMT-14"},
}

// ianaToWin is the inverse lookup, covering every identifier that appears
// in winToIANA. Built once at package initialization. A few identifiers
// are listed under more than one Windows name; iterating the names in
// sorted order keeps the winner deterministic.
var ianaToWin = func() map[string]string {
	wins := make([]string, 0, len(winToIANA))
	for win := range winToIANA {
		wins = append(wins, win)
	}
	sort.Strings(wins)

	m := make(map[string]string)
	for _, win := range wins {
		for _, id := range winToIANA[win] {
			if _, dup := m[id]; !dup {
				m[id] = win
			}
		}
	}
	return m
}()

// ToIANA translates a Windows zone name to its canonical IANA identifier.
func ToIANA(win string) (string, bool) {
	ids, ok := winToIANA[win]
	if !ok {
		return "", false
	}
	return ids[0], true
}

// ToWindows translates an IANA zone identifier to its Windows zone name.
func ToWindows(iana string) (string, bool) {
	win, ok := ianaToWin[iana]
	return win, ok
}

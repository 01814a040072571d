package locations

// table maps State → District → Cities. Loaded once, never mutated.
var table = map[string]map[string][]string{
	"Andhra Pradesh": {
		"Guntur":        {"Guntur", "Mangalagiri", "Tenali"},
		"Krishna":       {"Gudivada", "Machilipatnam", "Nuzvid"},
		"Visakhapatnam": {"Anakapalle", "Bheemunipatnam", "Visakhapatnam"},
	},
	"Bihar": {
		"Gaya":        {"Bodh Gaya", "Gaya", "Sherghati"},
		"Muzaffarpur": {"Kanti", "Motipur", "Muzaffarpur"},
		"Patna":       {"Danapur", "Patna", "Phulwari Sharif"},
	},
	"Gujarat": {
		"Ahmedabad": {"Ahmedabad", "Dholka", "Sanand"},
		"Surat":     {"Bardoli", "Mandvi", "Surat"},
		"Vadodara":  {"Dabhoi", "Padra", "Vadodara"},
	},
	"Karnataka": {
		"Bengaluru Urban": {"Bengaluru", "Kengeri", "Yelahanka"},
		"Mysuru":          {"Hunsur", "Mysuru", "Nanjangud"},
		"Udupi":           {"Karkala", "Kundapura", "Udupi"},
	},
	"Maharashtra": {
		"Mumbai Suburban": {"Andheri", "Borivali", "Kurla"},
		"Nagpur":          {"Kamptee", "Katol", "Nagpur"},
		"Pune":            {"Baramati", "Lonavala", "Pune"},
	},
	"Rajasthan": {
		"Jaipur":  {"Chomu", "Jaipur", "Sanganer"},
		"Jodhpur": {"Bilara", "Jodhpur", "Phalodi"},
		"Udaipur": {"Mavli", "Salumbar", "Udaipur"},
	},
	"Tamil Nadu": {
		"Chennai":    {"Ambattur", "Chennai", "Tambaram"},
		"Coimbatore": {"Coimbatore", "Mettupalayam", "Pollachi"},
		"Madurai":    {"Madurai", "Melur", "Usilampatti"},
	},
	"Telangana": {
		"Hyderabad":  {"Hyderabad", "Secunderabad", "Serilingampally"},
		"Rangareddy": {"Chevella", "Ibrahimpatnam", "Shadnagar"},
		"Warangal":   {"Hanamkonda", "Kazipet", "Warangal"},
	},
	"Uttar Pradesh": {
		"Agra":     {"Agra", "Etmadpur", "Fatehabad"},
		"Kanpur":   {"Bilhaur", "Ghatampur", "Kanpur"},
		"Lucknow":  {"Bakshi Ka Talab", "Lucknow", "Mohanlalganj"},
		"Varanasi": {"Pindra", "Ramnagar", "Varanasi"},
	},
	"West Bengal": {
		"Darjeeling": {"Darjeeling", "Kalimpong", "Kurseong"},
		"Howrah":     {"Bally", "Howrah", "Uluberia"},
		"Kolkata":    {"Behala", "Jadavpur", "Kolkata"},
	},
}

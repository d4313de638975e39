package catalog

import "miohost/models"

// homeMarker anchors every map widget on the house itself.
var homeMarker = models.MarkerPOI{
	ID:      "primacasa",
	Label:   lt("PrimaCasa", "PrimaCasa"),
	Address: lt("Christian-Schad-Str. 2, 63743 Aschaffenburg", "Christian-Schad-Str. 2, 63743 Aschaffenburg"),
	Lat:     49.9661478,
	Lon:     9.1571691,
	Tone:    "home",
}

var lidlMarker = models.MarkerPOI{
	ID:      "lidl",
	Label:   lt("Lidl (nearest)", "Lidl (nächster)"),
	Address: lt("Spessartstraße 40, 63743 Aschaffenburg", "Spessartstraße 40, 63743 Aschaffenburg"),
	Lat:     49.9656305,
	Lon:     9.1542176,
	Tone:    "accent",
}

var restaurantMarkers = []models.MarkerPOI{
	{
		ID:       "asia_wok",
		Label:    lt("Asia Wok & Sushi Bar", "Asia Wok & Sushi Bar"),
		Address:  lt("Weißenburger Str. 2, 63739 Aschaffenburg", "Weißenburger Str. 2, 63739 Aschaffenburg"),
		Cuisine:  ltp("Asian", "Asiatisch"),
		Phone:    "+49 6021 459090",
		OrderURL: "https://www.lieferando.de",
		Lat:      49.9766,
		Lon:      9.1509,
		Tone:     "food",
	},
	{
		ID:       "limon_grillhaus",
		Label:    lt("Limon Grillhaus", "Limon Grillhaus"),
		Address:  lt("Südbahnhofstraße 3, 63739 Aschaffenburg", "Südbahnhofstraße 3, 63739 Aschaffenburg"),
		Cuisine:  ltp("Turkish", "Türkisch"),
		Phone:    "+49 6021 5858560",
		OrderURL: "https://www.lieferando.de",
		SiteURL:  "http://www.limongrillhausaschaffenburg.de",
		Lat:      49.9758,
		Lon:      9.1489,
		Tone:     "food",
	},
	{
		ID:       "pizzeria_calabria",
		Label:    lt("Pizzeria Calabria", "Pizzeria Calabria"),
		Address:  lt("Goldbacher Str. 25, 63739 Aschaffenburg", "Goldbacher Str. 25, 63739 Aschaffenburg"),
		Cuisine:  ltp("Italian", "Italienisch"),
		Phone:    "+49 6021 451080",
		OrderURL: "https://www.lieferando.de",
		Lat:      49.9792,
		Lon:      9.1495,
		Tone:     "food",
	},
	{
		ID:       "fegerer",
		Label:    lt("Wirtshaus Zum Fegerer", "Wirtshaus Zum Fegerer"),
		Address:  lt("Schloßgasse 14, 63739 Aschaffenburg", "Schloßgasse 14, 63739 Aschaffenburg"),
		Cuisine:  ltp("German", "Deutsch"),
		Phone:    "+49 6021 15646",
		OrderURL: "https://www.lieferando.de",
		SiteURL:  "https://www.fegerer.de",
		Lat:      49.9783,
		Lon:      9.1512,
		Tone:     "food",
	},
	{
		ID:       "ilektra",
		Label:    lt("Ilektra Restaurant", "Ilektra Restaurant"),
		Address:  lt("Schweinheimer Str. 13, 63743 Aschaffenburg", "Schweinheimer Str. 13, 63743 Aschaffenburg"),
		Cuisine:  ltp("Greek", "Griechisch"),
		Phone:    "+49 6021 4392555",
		OrderURL: "https://www.lieferando.de",
		SiteURL:  "http://www.ilektra-aschaffenburg.de",
		Lat:      49.98,
		Lon:      9.153,
		Tone:     "food",
	},
}

var allPlaces = buildPlaces()

func buildPlaces() []models.MarkerPOI {
	out := []models.MarkerPOI{homeMarker, lidlMarker}
	out = append(out, restaurantMarkers...)
	return out
}

func localMap(title, subtitle models.LocalizedText) *models.MapWidget {
	markers := append([]models.MarkerPOI{homeMarker}, restaurantMarkers...)
	return &models.MapWidget{
		Title:    title,
		Subtitle: subtitle,
		Markers:  markers,
		Featured: restaurantMarkers,
	}
}

func supermarketMap() *models.MapWidget {
	return &models.MapWidget{
		Title:    lt("Supermarkets nearby", "Supermärkte in der Nähe"),
		Subtitle: lt("", ""),
		Markers:  []models.MarkerPOI{homeMarker, lidlMarker},
		Featured: []models.MarkerPOI{lidlMarker},
	}
}

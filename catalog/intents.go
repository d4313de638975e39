package catalog

import "miohost/models"

func lt(en, de string) models.LocalizedText {
	return models.LocalizedText{EN: en, DE: de}
}

func ltp(en, de string) *models.LocalizedText {
	t := lt(en, de)
	return &t
}

// intentTable is ordered: the matcher breaks score ties by catalog order,
// so earlier intents win over later ones on equal scores.
var intentTable = []models.Intent{
	{
		ID:       "wifi",
		Label:    lt("Wi-Fi", "WLAN"),
		Keywords: []string{"wifi", "wi-fi", "wlan", "password", "passwort", "wifi password", "wlan passwort", "internet", "connect", "connection", "verbinden", "verbindung"},
		Reply: lt(
			"Happy to help. Wi-Fi: “Boardinghouse-Gast” · Password: “Willkommen2024”. Want step-by-step connection tips?",
			"Gerne. WLAN: „Boardinghouse-Gast“ · Passwort: „Willkommen2024“. Soll ich beim Verbinden helfen?",
		),
	},
	{
		ID:    "laundry",
		Label: lt("Laundry", "Waschküche"),
		Keywords: []string{
			"laundry", "wash", "dryer", "washer", "washing",
			"wasch", "wäsche", "wasche", "waschen", "trockner", "waschmaschine", "waschraum",
		},
		Reply: lt(
			"The laundry room is in the basement. Washer 3€, dryer 2€. Tokens at reception. Need directions?",
			"Die Waschküche ist im Untergeschoss. Waschmaschine 3€, Trockner 2€. Token an der Rezeption. Soll ich den Weg schicken?",
		),
	},
	{
		ID:       "kitchen",
		Label:    lt("Kitchen", "Küche"),
		Keywords: []string{"kitchen", "cook", "microwave", "fridge", "küche", "kueche", "kochen", "mikrowelle", "kühlschrank"},
		Reply: lt(
			"Yes. The shared kitchen is on floor 2 with microwave, stove, and fridge. Please label your items.",
			"Ja. Die Gemeinschaftsküche ist im 2. Stock mit Mikrowelle, Herd und Kühlschrank. Bitte alles beschriften.",
		),
	},
	{
		ID:       "parking",
		Label:    lt("Parking", "Parken"),
		Keywords: []string{"parking", "park", "garage", "parkplatz", "parkplätze", "parkplaetze", "parken"},
		Reply: lt(
			"Underground garage is 12€/night. Limited spots — should I reserve one for you?",
			"Tiefgarage 12€/Nacht. Begrenzte Plätze — soll ich reservieren?",
		),
	},
	{
		ID:       "breakfast",
		Label:    lt("Breakfast", "Frühstück"),
		Keywords: []string{"breakfast", "frühstück", "bakery", "cafe", "bäckerei"},
		Reply: lt(
			"Nearby: Bäckerei Müller (5 min, opens 6:30) and Café Sonnenschein (7 min). Want addresses?",
			"In der Nähe: Bäckerei Müller (5 Min, ab 6:30) und Café Sonnenschein (7 Min). Soll ich die Adressen senden?",
		),
	},
	{
		ID:       "checkout",
		Label:    lt("Checkout", "Check-out"),
		Keywords: []string{"checkout", "check out", "check-out", "abreise", "auschecken", "rechnung", "invoice", "verlängern"},
		Reply: lt(
			"Standard checkout is 11:00. Late checkout is bookable if available. What time would you prefer?",
			"Standard-Check-out ist 11:00. Late Check-out ist je nach Verfügbarkeit buchbar. Welche Uhrzeit passt dir?",
		),
	},
	{
		ID:       "local",
		Label:    lt("Local tips", "Lokale Tipps"),
		Keywords: []string{"restaurant", "restaurants", "nearby", "in der nähe", "nähe", "pharmacy", "apotheke", "supermarket", "bus", "train"},
		Reply: lt(
			"I can recommend food, supermarkets, pharmacies, and transport nearby. What are you in the mood for?",
			"Ich kann Essen, Supermärkte, Apotheken und ÖPNV in der Nähe empfehlen. Woran denkst du?",
		),
	},
	{
		ID:       "delivery",
		Label:    lt("Food delivery", "Essen bestellen"),
		Keywords: []string{"delivery", "deliver", "order food", "food delivery", "lieferdienst", "lieferando", "wolt", "essen bestellen", "pizza"},
		Reply: lt(
			"Top picks: Pizzeria Milano (~30 min) or order via Lieferando/Wolt. Want links?",
			"Top-Tipps: Pizzeria Milano (~30 Min) oder per Lieferando/Wolt bestellen. Soll ich Links senden?",
		),
	},
	{
		ID:       "supermarket",
		Label:    lt("Supermarket", "Supermarkt"),
		Keywords: []string{"supermarket", "supermarkt", "grocery", "groceries", "einkaufen"},
		Reply: lt(
			"Nearest supermarkets: Lidl (very close), REWE (3 min walk), and ALDI (8 min walk). Want directions?",
			"Nächste Supermärkte: Lidl (sehr nah), REWE (3 Min zu Fuß) und ALDI (8 Min zu Fuß). Soll ich den Weg schicken?",
		),
	},
	{
		ID:       "reception",
		Label:    lt("Reception", "Rezeption"),
		Keywords: []string{"reception", "front desk", "kontakt", "rezeption", "help"},
		Reply: lt(
			"Reception is available 24/7: +49 30 123 456. Want me to call them?",
			"Die Rezeption ist 24/7 erreichbar: +49 30 123 456. Soll ich anrufen?",
		),
	},
	{
		ID:       "service_cleaning",
		Label:    lt("Extra cleaning", "Extra-Reinigung"),
		Keywords: []string{"cleaning", "clean", "reinigung", "extra cleaning"},
		Reply: lt(
			"Absolutely — I can book an extra cleaning. Please choose a time.",
			"Gerne — ich kann eine Extra-Reinigung buchen. Bitte wähle eine Zeit.",
		),
		ServiceID: "cleaning",
	},
	{
		ID:       "service_towels",
		Label:    lt("Fresh towels", "Handtücher"),
		Keywords: []string{"towels", "towel", "handtücher", "bettwäsche", "linen"},
		Reply: lt(
			"I can arrange fresh towels. Please choose a delivery time.",
			"Ich kann frische Handtücher organisieren. Bitte wähle eine Uhrzeit für die Lieferung.",
		),
		ServiceID: "towels",
	},
	{
		ID:       "service_late",
		Label:    lt("Late checkout", "Late Check-out"),
		Keywords: []string{"late", "late checkout", "spät", "später", "verlängern"},
		Reply: lt(
			"Late checkout is possible if available. What time would you like?",
			"Late Check-out ist möglich, wenn verfügbar. Welche Uhrzeit möchtest du?",
		),
		ServiceID: "late",
	},
	{
		ID:       "service_repair",
		Label:    lt("Repair request", "Defekt melden"),
		Keywords: []string{"broken", "repair", "defekt", "kaputt", "heizung", "lampe"},
		Reply: lt(
			"Sorry about that. I’ll notify maintenance. What’s the issue and room number?",
			"Oh je. Ich informiere den Techniker. Was ist defekt und in welchem Zimmer?",
		),
		ServiceID: "repair",
	},
}

var serviceTable = map[string]models.Service{
	"cleaning": {ID: "cleaning", Label: lt("Extra cleaning", "Extra-Reinigung"), Price: lt("25€", "25€")},
	"towels":   {ID: "towels", Label: lt("Fresh towels", "Handtücher"), Price: lt("12€", "12€")},
	"late":     {ID: "late", Label: lt("Late checkout", "Late Check-out"), Price: lt("25€", "25€")},
	"repair":   {ID: "repair", Label: lt("Repair request", "Defekt melden"), Price: lt("Free", "Kostenlos")},
}

var uiStrings = Strings{
	Welcome: lt(
		"Welcome! I’m here to make your stay effortless. What can I help with first?",
		"Willkommen! Ich mache deinen Aufenthalt so einfach wie möglich. Womit kann ich starten?",
	),
	TapHint: lt(
		"Tap a chip to continue — no typing needed.",
		"Tippe auf einen Chip — kein Tippen nötig.",
	),
	Clarify: lt(
		"I want to be precise. Is this about Wi-Fi, laundry, checkout, or a service request?",
		"Ich möchte es korrekt treffen. Geht es um WLAN, Waschküche, Check-out oder einen Service?",
	),
	ServicePrompt: lt(
		"Great — please fill the request details below.",
		"Super — bitte fülle die Details unten aus.",
	),
	MessagePrompt: lt(
		"Please enter your room number and message so I can forward it to reception.",
		"Bitte Zimmernummer und Nachricht eingeben, damit ich es an die Rezeption weiterleiten kann.",
	),
	BackNote: lt(
		"Back to previous step.",
		"Zurück zum vorherigen Schritt.",
	),
	Booked: lt(
		"Booked! We’ll confirm shortly.",
		"Gebucht! Wir bestätigen gleich.",
	),
	Forwarded: lt(
		"Thanks — I’ve forwarded your message to reception.",
		"Danke — ich habe deine Nachricht an die Rezeption weitergeleitet.",
	),
	MessageCancel: lt(
		"No problem. Anything else?",
		"Alles klar. Sonst noch etwas?",
	),
	IntentTag: lt("Intent: %s · %s", "Intent: %s · %s"),
}

package catalog

import "miohost/models"

func chip(id, icon, label, labelDE, prompt, promptDE string) models.Chip {
	return models.Chip{ID: id, Icon: icon, Label: lt(label, labelDE), Prompt: lt(prompt, promptDE)}
}

var quickChips = []models.Chip{
	chip("wifi", "🔐", "Wi-Fi password", "WLAN-Passwort", "What’s the Wi-Fi password?", "Wie lautet das WLAN-Passwort?"),
	chip("laundry", "🧺", "Laundry room", "Waschmaschine", "Where can I do laundry?", "Wo kann ich Wäsche waschen?"),
	chip("late", "🕓", "Late checkout", "Late Check-out", "Can I get a late checkout?", "Kann ich später auschecken?"),
	chip("breakfast", "🥐", "Breakfast nearby", "Frühstück", "Where can I get breakfast?", "Wo kann ich frühstücken?"),
	chip("parking", "🚗", "Parking info", "Parken", "Do you have parking?", "Gibt es Parkplätze?"),
	chip("repair", "🛠️", "Report an issue", "Defekt melden", "The heating is not working.", "Die Heizung funktioniert nicht."),
}

var secondaryChips = []models.Chip{
	chip("kitchen", "🍳", "Kitchen rules", "Küche", "Can I use the kitchen?", "Kann ich die Küche benutzen?"),
	chip("local", "📍", "Local tips", "Tipps in der Nähe", "Any good restaurants nearby?", "Gibt es gute Restaurants in der Nähe?"),
	chip("checkout", "🧾", "Checkout time", "Check-out", "What time is checkout?", "Wann ist Check-out?"),
	chip("reception", "📞", "Contact reception", "Rezeption", "I need the reception.", "Ich brauche die Rezeption."),
}

var contextChips = map[string][]models.Chip{
	"wifi": {
		chip("wifi_help", "📶", "Help connecting", "Verbindungs-Hilfe", "I can’t connect to the Wi-Fi.", "Ich kann mich nicht verbinden."),
		chip("checkout", "🧾", "Checkout time", "Check-out", "What time is checkout?", "Wann ist Check-out?"),
		chip("reception", "📞", "Contact reception", "Rezeption", "I need the reception.", "Ich brauche die Rezeption."),
	},
	"laundry": {
		chip("laundry_cost", "💶", "Costs", "Kosten", "How much does laundry cost?", "Was kostet die Wäsche?"),
		chip("laundry_tokens", "🪙", "Tokens", "Token", "Where do I get tokens?", "Wo bekomme ich Token?"),
		chip("kitchen", "🍳", "Kitchen rules", "Küche", "Can I use the kitchen?", "Kann ich die Küche benutzen?"),
	},
	"kitchen": {
		chip("kitchen_rules", "🧼", "House rules", "Hausregeln", "Any house rules?", "Gibt es Hausregeln?"),
		chip("breakfast", "🥐", "Breakfast nearby", "Frühstück", "Where can I get breakfast?", "Wo kann ich frühstücken?"),
		chip("local", "📍", "Local tips", "Tipps in der Nähe", "Any good restaurants nearby?", "Gibt es gute Restaurants in der Nähe?"),
	},
	"parking": {
		chip("reserve_parking", "✅", "Reserve a spot", "Platz reservieren", "Please reserve a parking spot.", "Bitte einen Parkplatz reservieren."),
		chip("checkout", "🧾", "Checkout time", "Check-out", "What time is checkout?", "Wann ist Check-out?"),
		chip("reception", "📞", "Contact reception", "Rezeption", "I need the reception.", "Ich brauche die Rezeption."),
	},
	"breakfast": {
		chip("local", "📍", "Local tips", "Tipps in der Nähe", "Any good restaurants nearby?", "Gibt es gute Restaurants in der Nähe?"),
		chip("delivery", "🍕", "Order food", "Essen bestellen", "I want to order food.", "Ich möchte Essen bestellen."),
		chip("supermarket", "🛒", "Supermarket", "Supermarkt", "Where is the nearest supermarket?", "Wo ist der nächste Supermarkt?"),
	},
	"checkout": {
		chip("late", "🕓", "Late checkout", "Late Check-out", "Can I get a late checkout?", "Kann ich später auschecken?"),
		chip("invoice", "🧾", "Invoice", "Rechnung", "How do I get my invoice?", "Wie bekomme ich meine Rechnung?"),
		chip("reception", "📞", "Contact reception", "Rezeption", "I need the reception.", "Ich brauche die Rezeption."),
	},
	"local": {
		chip("breakfast", "🥐", "Breakfast", "Frühstück", "Where can I get breakfast?", "Wo kann ich frühstücken?"),
		chip("pharmacy", "💊", "Pharmacy", "Apotheke", "Where is the nearest pharmacy?", "Wo ist die nächste Apotheke?"),
		chip("transport", "🚉", "Public transport", "ÖPNV", "How do I get to the station?", "Wie komme ich zum Bahnhof?"),
	},
	"reception": {
		chip("urgent", "⚡", "Urgent issue", "Dringend", "I have an urgent issue.", "Ich habe ein dringendes Problem."),
		chip("repair", "🛠️", "Report an issue", "Defekt melden", "The heating is not working.", "Die Heizung funktioniert nicht."),
		chip("late", "🕓", "Late checkout", "Late Check-out", "Can I get a late checkout?", "Kann ich später auschecken?"),
	},
	"service_cleaning": {
		chip("time", "📅", "Choose time", "Zeit wählen", "Tomorrow at 10:00 works for me.", "Morgen um 10:00 passt mir."),
		chip("towels", "🧺", "Fresh towels", "Handtücher", "I also need fresh towels.", "Ich brauche auch frische Handtücher."),
		chip("reception", "📞", "Contact reception", "Rezeption", "I need the reception.", "Ich brauche die Rezeption."),
	},
	"service_towels": {
		chip("time", "📅", "Choose time", "Zeit wählen", "Please deliver at 15:00.", "Bitte um 15:00 liefern."),
		chip("cleaning", "🧹", "Extra cleaning", "Extra-Reinigung", "Can I book extra cleaning too?", "Kann ich auch eine Extra-Reinigung buchen?"),
		chip("reception", "📞", "Contact reception", "Rezeption", "I need the reception.", "Ich brauche die Rezeption."),
	},
	"service_late": {
		chip("time", "🕓", "Choose time", "Zeit wählen", "Could I check out at 14:00?", "Kann ich um 14:00 auschecken?"),
		chip("invoice", "🧾", "Invoice", "Rechnung", "I need my invoice.", "Ich brauche meine Rechnung."),
		chip("reception", "📞", "Contact reception", "Rezeption", "I need the reception.", "Ich brauche die Rezeption."),
	},
	"service_repair": {
		chip("describe", "📝", "Describe issue", "Problem beschreiben", "The heater is not working in room 205.", "Die Heizung in Zimmer 205 funktioniert nicht."),
		chip("urgent", "⚡", "Mark urgent", "Dringend", "This is urgent.", "Das ist dringend."),
		chip("reception", "📞", "Contact reception", "Rezeption", "I need the reception.", "Ich brauche die Rezeption."),
	},
}

// intentPrompts hold the canonical user phrasing for each intent, used when a
// chip or deep link targets an intent directly instead of sending free text.
var intentPrompts = map[string]models.LocalizedText{
	"wifi":             lt("What’s the Wi-Fi password?", "Wie lautet das WLAN-Passwort?"),
	"laundry":          lt("Where can I do laundry?", "Wo kann ich Wäsche waschen?"),
	"kitchen":          lt("Can I use the kitchen?", "Kann ich die Küche benutzen?"),
	"parking":          lt("Do you have parking?", "Gibt es Parkplätze?"),
	"breakfast":        lt("Where can I get breakfast?", "Wo kann ich frühstücken?"),
	"checkout":         lt("What time is checkout?", "Wann ist Check-out?"),
	"local":            lt("Any good restaurants nearby?", "Gibt es gute Restaurants in der Nähe?"),
	"reception":        lt("I need the reception.", "Ich brauche die Rezeption."),
	"service_cleaning": lt("I’d like extra cleaning.", "Ich möchte eine Extra-Reinigung."),
	"service_towels":   lt("I need fresh towels.", "Ich brauche frische Handtücher."),
	"service_late":     lt("Can I get a late checkout?", "Kann ich später auschecken?"),
	"service_repair":   lt("The heating is not working.", "Die Heizung funktioniert nicht."),
	"delivery":         lt("I want to order food.", "Ich möchte Essen bestellen."),
	"supermarket":      lt("Where is the nearest supermarket?", "Wo ist der nächste Supermarkt?"),
}

package catalog

import "miohost/models"

func next(i int) *int { return &i }

func opt(label, labelDE, user, userDE string) models.Option {
	return models.Option{Label: lt(label, labelDE), User: lt(user, userDE)}
}

func optNext(label, labelDE, user, userDE string, n int) models.Option {
	o := opt(label, labelDE, user, userDE)
	o.Next = next(n)
	return o
}

func optEnd(label, labelDE, user, userDE string) models.Option {
	o := opt(label, labelDE, user, userDE)
	o.Action = &models.Action{Kind: models.ActionEnd}
	return o
}

func optJump(label, labelDE, user, userDE, intentID string) models.Option {
	o := opt(label, labelDE, user, userDE)
	o.Action = &models.Action{Kind: models.ActionJump, IntentID: intentID}
	return o
}

func optService(label, labelDE, user, userDE, serviceID string) models.Option {
	o := opt(label, labelDE, user, userDE)
	o.Action = &models.Action{Kind: models.ActionService, ServiceID: serviceID}
	return o
}

func optMessage(label, labelDE, user, userDE string, topic *models.LocalizedText, preset *models.LocalizedText) models.Option {
	o := opt(label, labelDE, user, userDE)
	o.Action = &models.Action{Kind: models.ActionMessage, Topic: topic, Preset: preset}
	return o
}

var flowTable = map[string]models.Flow{
	"wifi":             wifiFlow,
	"laundry":          laundryFlow,
	"kitchen":          kitchenFlow,
	"parking":          parkingFlow,
	"breakfast":        breakfastFlow,
	"checkout":         checkoutFlow,
	"local":            localFlow,
	"reception":        receptionFlow,
	"delivery":         deliveryFlow,
	"supermarket":      supermarketFlow,
	"service_cleaning": cleaningFlow,
	"service_towels":   towelsFlow,
	"service_late":     lateFlow,
	"service_repair":   repairFlow,
}

var wifiFlow = models.Flow{IntentID: "wifi", Steps: []models.Step{
	{
		ID:  "wifi_1",
		Bot: lt("Let’s fix it quickly. Which device are you using?", "Wir lösen das schnell. Welches Gerät nutzt du?"),
		Options: []models.Option{
			optNext("iPhone / iPad", "iPhone / iPad", "I’m on iPhone.", "Ich bin auf iPhone.", 1),
			optNext("Android", "Android", "Android device.", "Android-Gerät.", 1),
			optNext("Laptop", "Laptop", "Laptop.", "Laptop.", 1),
		},
	},
	{
		ID: "wifi_2",
		Bot: lt(
			"Open Wi‑Fi settings, select “Boardinghouse-Gast”, enter the password “Willkommen2024”.",
			"Öffne die WLAN-Einstellungen, wähle „Boardinghouse-Gast“, gib das Passwort „Willkommen2024“ ein.",
		),
		Options: []models.Option{
			optNext("Connected", "Verbunden", "I’m connected now.", "Ich bin verbunden.", 2),
			optNext("Still failing", "Geht nicht", "Still not working.", "Geht immer noch nicht.", 3),
		},
	},
	{
		ID:  "wifi_3",
		Bot: lt("Great. Anything else you need right now?", "Super. Brauchst du noch etwas?"),
		Options: []models.Option{
			optJump("Local tips", "Tipps in der Nähe", "Local tips, please.", "Tipps in der Nähe, bitte.", "local"),
			optJump("Checkout time", "Check-out", "What time is checkout?", "Wann ist Check-out?", "checkout"),
			optEnd("All good", "Alles gut", "All good, thanks.", "Alles gut, danke."),
		},
	},
	{
		ID: "wifi_4",
		Bot: lt(
			"Try “Forget Network” and reconnect. If it still fails, I can escalate it.",
			"Bitte „Netzwerk vergessen“ und erneut verbinden. Falls es weiterhin nicht klappt, eskaliere ich es.",
		),
		Options: []models.Option{
			optJump("Contact reception", "Rezeption", "Please contact reception.", "Bitte Rezeption kontaktieren.", "reception"),
			optJump("Report issue", "Defekt melden", "I want to report an issue.", "Ich möchte einen Defekt melden.", "service_repair"),
			optNext("Try again", "Nochmal versuchen", "I’ll try again.", "Ich versuche es nochmal.", 1),
		},
	},
}}

var laundryFlow = models.Flow{IntentID: "laundry", Steps: []models.Step{
	{
		ID:  "laundry_1",
		Bot: lt("The laundry room is in the basement. What do you need?", "Die Waschküche ist im Untergeschoss. Was brauchst du?"),
		Options: []models.Option{
			optNext("Prices", "Preise", "What are the prices?", "Was kostet es?", 1),
			optNext("Tokens", "Token", "Where do I get tokens?", "Wo bekomme ich Token?", 2),
			optNext("Directions", "Wegbeschreibung", "How do I get there?", "Wie komme ich hin?", 3),
			optNext("Opening hours", "Öffnungszeiten", "What are the opening hours?", "Welche Öffnungszeiten?", 4),
			optNext("Detergent & supplies", "Waschmittel & Zubehör", "Where do I get detergent?", "Wo bekomme ich Waschmittel?", 5),
		},
	},
	{
		ID:  "laundry_2",
		Bot: lt("Washer 3€ per cycle, dryer 2€.", "Waschmaschine 3€ pro Waschgang, Trockner 2€."),
		Options: []models.Option{
			optNext("Tokens", "Token", "Where do I get tokens?", "Wo bekomme ich Token?", 2),
			optNext("Directions", "Wegbeschreibung", "How do I get there?", "Wie komme ich hin?", 3),
			optNext("Opening hours", "Öffnungszeiten", "Opening hours?", "Öffnungszeiten?", 4),
			optNext("Detergent & supplies", "Waschmittel & Zubehör", "Where do I get detergent?", "Wo bekomme ich Waschmittel?", 5),
			optNext("Rules", "Regeln", "Any rules for the laundry room?", "Gibt es Regeln?", 6),
			optEnd("Done", "Fertig", "Thanks, that’s all.", "Danke, das reicht."),
		},
	},
	{
		ID:  "laundry_3",
		Bot: lt("Tokens are available at reception. Detergent is in the vending box.", "Token gibt es an der Rezeption. Waschmittel ist im Automaten."),
		Options: []models.Option{
			optNext("Directions", "Wegbeschreibung", "How do I get there?", "Wie komme ich hin?", 3),
			optNext("Opening hours", "Öffnungszeiten", "Opening hours?", "Öffnungszeiten?", 4),
			optNext("Rules", "Regeln", "Any rules?", "Gibt es Regeln?", 6),
			optJump("Contact reception", "Rezeption", "Please contact reception.", "Bitte Rezeption kontaktieren.", "reception"),
			optEnd("Done", "Fertig", "Thanks!", "Danke!"),
		},
	},
	{
		ID:  "laundry_4",
		Bot: lt("Take the elevator to B1. First door on the right.", "Fahr mit dem Aufzug ins B1. Erste Tür rechts."),
		Options: []models.Option{
			optNext("Opening hours", "Öffnungszeiten", "Opening hours?", "Öffnungszeiten?", 4),
			optNext("Rules", "Regeln", "Any rules?", "Gibt es Regeln?", 6),
			optJump("Kitchen info", "Küche", "Anything about the kitchen?", "Gibt es Infos zur Küche?", "kitchen"),
			optJump("Checkout time", "Check-out", "What time is checkout?", "Wann ist Check-out?", "checkout"),
			optEnd("Done", "Fertig", "Got it, thanks.", "Verstanden, danke."),
		},
	},
	{
		ID:  "laundry_5",
		Bot: lt("Laundry room is open daily 06:00–23:00.", "Die Waschküche ist täglich von 06:00–23:00 geöffnet."),
		Options: []models.Option{
			optNext("Prices", "Preise", "What are the prices?", "Was kostet es?", 1),
			optNext("Tokens", "Token", "Where do I get tokens?", "Wo bekomme ich Token?", 2),
			optNext("Directions", "Wegbeschreibung", "How do I get there?", "Wie komme ich hin?", 3),
			optNext("Rules", "Regeln", "Any rules?", "Gibt es Regeln?", 6),
			optEnd("Done", "Fertig", "Thanks!", "Danke!"),
		},
	},
	{
		ID:  "laundry_6",
		Bot: lt("Detergent is available in the vending box. Please bring small change just in case.", "Waschmittel gibt es im Automaten. Bitte Kleingeld mitbringen."),
		Options: []models.Option{
			optNext("Prices", "Preise", "What are the prices?", "Was kostet es?", 1),
			optNext("Opening hours", "Öffnungszeiten", "Opening hours?", "Öffnungszeiten?", 4),
			optNext("Rules", "Regeln", "Any rules?", "Gibt es Regeln?", 6),
			optEnd("Done", "Fertig", "All good, thanks.", "Alles klar, danke."),
		},
	},
	{
		ID:  "laundry_7",
		Bot: lt("Please label your laundry basket and remove clothes promptly after cycles.", "Bitte den Wäschekorb beschriften und die Wäsche nach dem Waschgang zeitnah abholen."),
		Options: []models.Option{
			optNext("Prices", "Preise", "What are the prices?", "Was kostet es?", 1),
			optNext("Tokens", "Token", "Where do I get tokens?", "Wo bekomme ich Token?", 2),
			optNext("Opening hours", "Öffnungszeiten", "Opening hours?", "Öffnungszeiten?", 4),
			optEnd("Done", "Fertig", "Thanks!", "Danke!"),
		},
	},
}}

var kitchenFlow = models.Flow{IntentID: "kitchen", Steps: []models.Step{
	{
		ID:  "kitchen_1",
		Bot: lt("The shared kitchen is on floor 2. What do you need?", "Die Gemeinschaftsküche ist im 2. Stock. Was brauchst du?"),
		Options: []models.Option{
			optNext("Equipment", "Geräte", "Which equipment is available?", "Welche Geräte gibt es?", 1),
			optNext("Rules", "Regeln", "Any kitchen rules?", "Gibt es Regeln?", 2),
			optNext("Opening hours", "Öffnungszeiten", "What are the opening hours?", "Welche Öffnungszeiten?", 3),
		},
	},
	{
		ID:  "kitchen_2",
		Bot: lt("Microwave, stove, fridge, and dishwasher are available.", "Mikrowelle, Herd, Kühlschrank und Spülmaschine sind vorhanden."),
		Options: []models.Option{
			optNext("Rules", "Regeln", "Any rules?", "Gibt es Regeln?", 2),
			optEnd("Done", "Fertig", "All good, thanks.", "Alles klar, danke."),
		},
	},
	{
		ID:  "kitchen_3",
		Bot: lt("Please label your items and clean up after use.", "Bitte alles beschriften und nach Nutzung reinigen."),
		Options: []models.Option{
			optNext("Opening hours", "Öffnungszeiten", "What are the opening hours?", "Welche Öffnungszeiten?", 3),
			optEnd("Done", "Fertig", "Understood, thanks.", "Verstanden, danke."),
		},
	},
	{
		ID:  "kitchen_4",
		Bot: lt("Kitchen is open 06:00–23:00.", "Die Küche ist von 06:00–23:00 geöffnet."),
		Options: []models.Option{
			optJump("Breakfast nearby", "Frühstück", "Where can I get breakfast?", "Wo kann ich frühstücken?", "breakfast"),
			optEnd("Done", "Fertig", "Great, thanks.", "Super, danke."),
		},
	},
}}

var parkingFlow = models.Flow{IntentID: "parking", Steps: []models.Step{
	{
		ID:  "parking_1",
		Bot: lt("Underground garage is 12€/night, limited spots.", "Die Tiefgarage kostet 12€/Nacht, begrenzte Plätze."),
		Options: []models.Option{
			optNext("Reserve a spot", "Platz reservieren", "Please reserve a spot.", "Bitte einen Platz reservieren.", 1),
			optNext("Access info", "Zugang", "How do I access it?", "Wie komme ich rein?", 2),
			optNext("Payment", "Zahlung", "How do I pay?", "Wie bezahle ich?", 3),
		},
	},
	{
		ID:  "parking_2",
		Bot: lt("I can reserve a spot. Please share name + plate number.", "Ich kann reservieren. Bitte Name + Kennzeichen."),
		Options: []models.Option{
			optJump("Contact reception", "Rezeption", "Please contact reception.", "Bitte Rezeption kontaktieren.", "reception"),
			optEnd("Done", "Fertig", "Thanks, that’s all.", "Danke, das reicht."),
		},
	},
	{
		ID:  "parking_3",
		Bot: lt("Access is via Gate B. Use your keycard to open.", "Zugang über Tor B. Mit der Zimmerkarte öffnen."),
		Options: []models.Option{
			optNext("Reserve a spot", "Platz reservieren", "Please reserve a spot.", "Bitte reservieren.", 1),
			optEnd("Done", "Fertig", "Got it, thanks.", "Verstanden, danke."),
		},
	},
	{
		ID:  "parking_4",
		Bot: lt("Payment at reception or added to your invoice.", "Zahlung an der Rezeption oder auf Rechnung."),
		Options: []models.Option{
			optJump("Invoice", "Rechnung", "I need the invoice.", "Ich brauche die Rechnung.", "checkout"),
			optEnd("Done", "Fertig", "Thanks!", "Danke!"),
		},
	},
}}

var breakfastFlow = models.Flow{IntentID: "breakfast", Steps: []models.Step{
	{
		ID:  "breakfast_1",
		Bot: lt("Nearby: Bäckerei Müller (5 min) and Café Sonnenschein (7 min).", "In der Nähe: Bäckerei Müller (5 Min) und Café Sonnenschein (7 Min)."),
		Options: []models.Option{
			optNext("Addresses", "Adressen", "Please send the addresses.", "Bitte die Adressen.", 1),
			optNext("Opening hours", "Öffnungszeiten", "When do they open?", "Wann öffnen sie?", 2),
			optNext("More options", "Mehr Optionen", "Any other options?", "Gibt es mehr?", 3),
		},
	},
	{
		ID:  "breakfast_2",
		Bot: lt("Müller: Main St 12 · Sonnenschein: Park Ave 4.", "Müller: Hauptstraße 12 · Sonnenschein: Parkallee 4."),
		Options: []models.Option{
			optNext("Directions", "Wegbeschreibung", "How do I get there?", "Wie komme ich hin?", 3),
			optEnd("Done", "Fertig", "Thanks!", "Danke!"),
		},
	},
	{
		ID:  "breakfast_3",
		Bot: lt("Müller opens 06:30, Sonnenschein opens 07:00.", "Müller öffnet um 06:30, Sonnenschein um 07:00."),
		Options: []models.Option{
			optNext("Addresses", "Adressen", "Please send the addresses.", "Bitte die Adressen.", 1),
			optEnd("Done", "Fertig", "Great, thanks.", "Super, danke."),
		},
	},
	{
		ID:  "breakfast_4",
		Bot: lt("I can also share supermarkets or delivery options nearby.", "Ich kann auch Supermärkte oder Lieferoptionen in der Nähe nennen."),
		Options: []models.Option{
			optJump("Local tips", "Tipps in der Nähe", "Show local tips.", "Zeig mir Tipps.", "local"),
			optEnd("Done", "Fertig", "All set, thanks.", "Alles gut, danke."),
		},
	},
}}

var checkoutFlow = models.Flow{IntentID: "checkout", Steps: []models.Step{
	{
		ID:  "checkout_1",
		Bot: lt("Standard checkout is 11:00.", "Standard-Check-out ist 11:00."),
		Options: []models.Option{
			optNext("Late checkout", "Late Check-out", "Can I get a late checkout?", "Kann ich später auschecken?", 1),
			optNext("Invoice", "Rechnung", "How do I get my invoice?", "Wie bekomme ich meine Rechnung?", 2),
			optNext("Key return", "Schlüsselrückgabe", "Where do I return the key?", "Wo gebe ich den Schlüssel ab?", 3),
		},
	},
	{
		ID:  "checkout_2",
		Bot: lt("Late checkout is 25€ if available.", "Late Check-out kostet 25€, je nach Verfügbarkeit."),
		Options: []models.Option{
			optService("Request late checkout", "Late Check-out anfragen", "Please request late checkout.", "Bitte Late Check-out anfragen.", "late"),
			optJump("Contact reception", "Rezeption", "Please contact reception.", "Bitte Rezeption kontaktieren.", "reception"),
			optEnd("Done", "Fertig", "No thanks.", "Nein, danke."),
		},
	},
	{
		ID:  "checkout_3",
		Bot: lt("Invoice is emailed after checkout, or printed at reception.", "Die Rechnung kommt per E-Mail nach dem Check-out oder direkt an der Rezeption."),
		Options: []models.Option{
			optJump("Contact reception", "Rezeption", "Please contact reception.", "Bitte Rezeption kontaktieren.", "reception"),
			optEnd("Done", "Fertig", "Understood, thanks.", "Verstanden, danke."),
		},
	},
	{
		ID:  "checkout_4",
		Bot: lt("Return the key to reception or use the drop box by the entrance.", "Gib den Schlüssel an der Rezeption ab oder nutze die Schlüsselbox am Eingang."),
		Options: []models.Option{
			optJump("Reception", "Rezeption", "I need the reception.", "Ich brauche die Rezeption.", "reception"),
			optEnd("Done", "Fertig", "All good, thanks.", "Alles gut, danke."),
		},
	},
}}

var localFlow = models.Flow{IntentID: "local", Steps: []models.Step{
	{
		ID:  "local_1",
		Bot: lt("What kind of local tips do you need?", "Welche lokalen Tipps brauchst du?"),
		Map: localMap(lt("Local map", "Lokale Karte"), lt("", "")),
		Options: []models.Option{
			optNext("Food", "Essen", "Food recommendations, please.", "Restaurant-Tipps, bitte.", 1),
			optNext("Pharmacy", "Apotheke", "Nearest pharmacy?", "Nächste Apotheke?", 2),
			optNext("Transport", "ÖPNV", "Public transport info.", "ÖPNV-Infos.", 3),
		},
	},
	{
		ID:  "local_2",
		Bot: lt("Top picks: Pizzeria Milano and Sushi Go. Want delivery links?", "Top-Tipps: Pizzeria Milano und Sushi Go. Möchtest du Lieferlinks?"),
		Options: []models.Option{
			optEnd("Delivery links", "Lieferlinks", "Yes, please send links.", "Ja, bitte Links senden."),
			optNext("More tips", "Mehr Tipps", "More tips, please.", "Mehr Tipps, bitte.", 0),
			optEnd("Done", "Fertig", "That’s enough, thanks.", "Das reicht, danke."),
		},
	},
	{
		ID:  "local_3",
		Bot: lt("Nearest pharmacy: Apotheke am Park, open until 20:00.", "Nächste Apotheke: Apotheke am Park, geöffnet bis 20:00."),
		Options: []models.Option{
			optNext("Transport", "ÖPNV", "How do I get there?", "Wie komme ich hin?", 3),
			optEnd("Done", "Fertig", "Thanks!", "Danke!"),
		},
	},
	{
		ID:  "local_4",
		Bot: lt("S-Bahn S1 is 6 min away. Bus 120 runs every 10 min.", "Die S-Bahn S1 ist 6 Min entfernt. Bus 120 fährt alle 10 Min."),
		Options: []models.Option{
			optNext("More tips", "Mehr Tipps", "More tips, please.", "Mehr Tipps, bitte.", 0),
			optEnd("Done", "Fertig", "Perfect, thanks.", "Perfekt, danke."),
		},
	},
}}

var receptionFlow = models.Flow{IntentID: "reception", Steps: []models.Step{
	{
		ID: "reception_1",
		Bot: lt(
			"Reception is available 24/7 at +49 30 123 456. How would you like to reach them?",
			"Die Rezeption ist 24/7 erreichbar unter +49 30 123 456. Wie möchtest du sie erreichen?",
		),
		Options: []models.Option{
			optNext("Call reception", "Rezeption anrufen", "Please call reception.", "Bitte Rezeption anrufen.", 1),
			optNext("Send a message", "Nachricht senden", "I want to send a message.", "Ich möchte eine Nachricht senden.", 2),
			optNext("Report an issue", "Defekt melden", "I need to report an issue.", "Ich möchte einen Defekt melden.", 3),
			optJump("Invoice / billing", "Rechnung", "I have a billing question.", "Ich habe eine Rechnungsfrage.", "checkout"),
		},
	},
	{
		ID:  "reception_2",
		Bot: lt("I can connect you now or ask them to call you back.", "Ich kann dich jetzt verbinden oder um einen Rückruf bitten."),
		Options: []models.Option{
			optEnd("Connect me now", "Jetzt verbinden", "Please connect me now.", "Bitte jetzt verbinden."),
			optNext("Request callback", "Rückruf anfragen", "Please call me back.", "Bitte um Rückruf.", 4),
			optNext("Send a message", "Nachricht senden", "I’ll send a message.", "Ich sende eine Nachricht.", 2),
		},
	},
	{
		ID:  "reception_3",
		Bot: lt("What is your message about?", "Worum geht es in deiner Nachricht?"),
		Options: []models.Option{
			optMessage("General question", "Allgemeine Frage", "I have a general question.", "Ich habe eine allgemeine Frage.",
				ltp("General question", "Allgemeine Frage"), nil),
			optMessage("Late checkout request", "Late Check-out", "I want late checkout.", "Ich möchte Late Check-out.",
				ltp("Late checkout request", "Late-Check-out-Anfrage"), nil),
			optMessage("Invoice / billing", "Rechnung", "I need an invoice.", "Ich brauche die Rechnung.",
				ltp("Invoice / billing", "Rechnung"), nil),
			optMessage("Maintenance issue", "Technik / Defekt", "I want to report a maintenance issue.", "Ich möchte einen Defekt melden.",
				ltp("Maintenance issue", "Technik / Defekt"), nil),
			optMessage("Other", "Sonstiges", "Something else.", "Etwas anderes.",
				ltp("Other", "Sonstiges"), nil),
		},
	},
	{
		ID:  "reception_4",
		Bot: lt("Is the issue urgent?", "Ist das dringend?"),
		Options: []models.Option{
			optMessage("Yes, urgent", "Ja, dringend", "Yes, urgent.", "Ja, dringend.",
				ltp("Urgent issue", "Dringender Defekt"), nil),
			optNext("Not urgent", "Nicht dringend", "Not urgent.", "Nicht dringend.", 5),
			optJump("Open repair ticket", "Ticket öffnen", "Open a repair ticket.", "Bitte ein Ticket öffnen.", "service_repair"),
		},
	},
	{
		ID:  "reception_5",
		Bot: lt("When should they call you back?", "Wann sollen sie dich zurückrufen?"),
		Options: []models.Option{
			optMessage("Morning (09:00–12:00)", "Vormittag (09:00–12:00)", "Morning works.", "Vormittag passt.",
				ltp("Callback request", "Rückruf"),
				ltp("Please call me back in the morning.", "Bitte ruft mich vormittags zurück.")),
			optMessage("Afternoon (12:00–17:00)", "Nachmittag (12:00–17:00)", "Afternoon works.", "Nachmittag passt.",
				ltp("Callback request", "Rückruf"),
				ltp("Please call me back in the afternoon.", "Bitte ruft mich nachmittags zurück.")),
			optMessage("Evening (17:00–21:00)", "Abend (17:00–21:00)", "Evening works.", "Abend passt.",
				ltp("Callback request", "Rückruf"),
				ltp("Please call me back in the evening.", "Bitte ruft mich abends zurück.")),
		},
	},
	{
		ID: "reception_6",
		Bot: lt(
			"If it’s not urgent, I can open a repair ticket or forward a message to reception.",
			"Wenn es nicht dringend ist, kann ich ein Ticket öffnen oder eine Nachricht an die Rezeption senden.",
		),
		Options: []models.Option{
			optJump("Open repair ticket", "Ticket öffnen", "Open a repair ticket.", "Bitte ein Ticket öffnen.", "service_repair"),
			optMessage("Send message", "Nachricht senden", "Send a message to reception.", "Bitte Nachricht an die Rezeption.",
				ltp("Maintenance issue", "Technik / Defekt"), nil),
			optNext("Call reception", "Rezeption anrufen", "Call reception.", "Rezeption anrufen.", 1),
		},
	},
}}

var deliveryFlow = models.Flow{IntentID: "delivery", Steps: []models.Step{
	{
		ID:  "delivery_1",
		Bot: lt("You can order via Lieferando or Wolt, or call Pizzeria Milano.", "Du kannst über Lieferando oder Wolt bestellen oder Pizzeria Milano anrufen."),
		Map: localMap(lt("Nearby restaurants", "Restaurants in der Nähe"), lt("", "")),
		Options: []models.Option{
			optNext("Send links", "Links senden", "Please send links.", "Bitte Links senden.", 1),
			optNext("Call pizzeria", "Pizzeria anrufen", "Call the pizzeria.", "Pizzeria anrufen.", 2),
			optNext("More tips", "Mehr Tipps", "More tips, please.", "Mehr Tipps, bitte.", 3),
		},
	},
	{
		ID:  "delivery_2",
		Bot: lt("Here are the links: Lieferando / Wolt. Want anything else?", "Hier sind die Links: Lieferando / Wolt. Noch etwas?"),
		Options: []models.Option{
			optJump("Supermarket", "Supermarkt", "Where is the nearest supermarket?", "Wo ist der nächste Supermarkt?", "supermarket"),
			optJump("Local tips", "Tipps in der Nähe", "Show local tips.", "Zeig mir Tipps.", "local"),
			optEnd("Done", "Fertig", "All set, thanks.", "Alles gut, danke."),
		},
	},
	{
		ID:  "delivery_3",
		Bot: lt("Pizzeria Milano delivers in ~30 minutes.", "Pizzeria Milano liefert in ~30 Minuten."),
		Options: []models.Option{
			optNext("Send links", "Links senden", "Please send links.", "Bitte Links senden.", 1),
			optEnd("Done", "Fertig", "Thanks!", "Danke!"),
		},
	},
	{
		ID:  "delivery_4",
		Bot: lt("I can also suggest nearby restaurants or supermarkets.", "Ich kann auch Restaurants oder Supermärkte in der Nähe empfehlen."),
		Options: []models.Option{
			optJump("Restaurants", "Restaurants", "Restaurant tips, please.", "Restaurant-Tipps, bitte.", "local"),
			optJump("Supermarket", "Supermarkt", "Nearest supermarket?", "Nächster Supermarkt?", "supermarket"),
			optEnd("Done", "Fertig", "All good, thanks.", "Alles gut, danke."),
		},
	},
}}

var supermarketFlow = models.Flow{IntentID: "supermarket", Steps: []models.Step{
	{
		ID: "supermarket_1",
		Bot: lt(
			"Nearest supermarkets: Lidl (very close), REWE (3 min walk, until 22:00) and ALDI (8 min walk).",
			"Nächste Supermärkte: Lidl (sehr nah), REWE (3 Min zu Fuß, bis 22:00) und ALDI (8 Min zu Fuß).",
		),
		Map: supermarketMap(),
		Options: []models.Option{
			optNext("Directions", "Wegbeschreibung", "Please send directions.", "Bitte Wegbeschreibung.", 1),
			optNext("Opening hours", "Öffnungszeiten", "Opening hours?", "Öffnungszeiten?", 2),
			optNext("Other options", "Weitere Optionen", "Any other options?", "Gibt es weitere Optionen?", 3),
		},
	},
	{
		ID:  "supermarket_2",
		Bot: lt("REWE: 3 min walk via Main St. ALDI: 8 min via Park Ave.", "REWE: 3 Min zu Fuß über die Hauptstraße. ALDI: 8 Min über die Parkallee."),
		Options: []models.Option{
			optNext("Opening hours", "Öffnungszeiten", "Opening hours?", "Öffnungszeiten?", 2),
			optEnd("Done", "Fertig", "Thanks!", "Danke!"),
		},
	},
	{
		ID:  "supermarket_3",
		Bot: lt("REWE is open until 22:00, ALDI until 20:00.", "REWE ist bis 22:00 offen, ALDI bis 20:00."),
		Options: []models.Option{
			optNext("Directions", "Wegbeschreibung", "Please send directions.", "Bitte Wegbeschreibung.", 1),
			optEnd("Done", "Fertig", "Perfect, thanks.", "Perfekt, danke."),
		},
	},
	{
		ID:  "supermarket_4",
		Bot: lt("I can also suggest delivery or breakfast spots nearby.", "Ich kann auch Lieferdienste oder Frühstück in der Nähe empfehlen."),
		Options: []models.Option{
			optJump("Delivery", "Lieferdienst", "I want delivery options.", "Ich möchte Lieferoptionen.", "delivery"),
			optJump("Breakfast", "Frühstück", "Where can I get breakfast?", "Wo kann ich frühstücken?", "breakfast"),
			optEnd("Done", "Fertig", "All good, thanks.", "Alles gut, danke."),
		},
	},
}}

var cleaningFlow = models.Flow{IntentID: "service_cleaning", Steps: []models.Step{
	{
		ID:  "cleaning_1",
		Bot: lt("Extra cleaning costs 25€. When should we schedule it?", "Extra-Reinigung kostet 25€. Wann sollen wir sie einplanen?"),
		Options: []models.Option{
			optNext("Morning", "Vormittag", "Morning works.", "Vormittag passt.", 1),
			optNext("Afternoon", "Nachmittag", "Afternoon works.", "Nachmittag passt.", 1),
			optNext("Pick a time", "Zeit wählen", "I want to pick a time.", "Ich möchte eine Zeit wählen.", 1),
		},
	},
	{
		ID:  "cleaning_2",
		Bot: lt("Great. I can confirm availability within minutes.", "Super. Ich bestätige die Verfügbarkeit in wenigen Minuten."),
		Options: []models.Option{
			optNext("Continue", "Weiter", "Continue.", "Weiter.", 2),
			optEnd("Cancel", "Abbrechen", "Cancel the request.", "Anfrage abbrechen."),
		},
	},
	{
		ID:  "cleaning_3",
		Bot: lt("Any notes for the cleaning team?", "Gibt es Hinweise für das Reinigungsteam?"),
		Options: []models.Option{
			optNext("No notes", "Keine Hinweise", "No notes.", "Keine Hinweise.", 3),
			optNext("Add notes", "Hinweise hinzufügen", "I’ll add notes.", "Ich füge Hinweise hinzu.", 3),
		},
	},
	{
		ID:  "cleaning_4",
		Bot: lt("Ready to submit the request?", "Bereit, die Anfrage zu senden?"),
		Options: []models.Option{
			optService("Submit now", "Jetzt senden", "Submit the request.", "Bitte senden.", "cleaning"),
			optNext("Change time", "Zeit ändern", "I want to change the time.", "Ich möchte die Zeit ändern.", 0),
			optEnd("Cancel", "Abbrechen", "Cancel.", "Abbrechen."),
		},
	},
}}

var towelsFlow = models.Flow{IntentID: "service_towels", Steps: []models.Step{
	{
		ID:  "towels_1",
		Bot: lt("Fresh towels are 12€. When should we deliver them?", "Frische Handtücher kosten 12€. Wann sollen wir liefern?"),
		Options: []models.Option{
			optNext("Soon", "Sofort", "As soon as possible.", "So schnell wie möglich.", 1),
			optNext("Later today", "Später heute", "Later today.", "Später heute.", 1),
			optNext("Pick a time", "Zeit wählen", "I want to pick a time.", "Ich möchte eine Zeit wählen.", 1),
		},
	},
	{
		ID:  "towels_2",
		Bot: lt("We deliver within 2 hours after confirmation.", "Wir liefern innerhalb von 2 Stunden nach Bestätigung."),
		Options: []models.Option{
			optNext("Continue", "Weiter", "Continue.", "Weiter.", 2),
			optEnd("Cancel", "Abbrechen", "Cancel the request.", "Anfrage abbrechen."),
		},
	},
	{
		ID:  "towels_3",
		Bot: lt("Any notes for delivery?", "Gibt es Hinweise zur Lieferung?"),
		Options: []models.Option{
			optNext("No notes", "Keine Hinweise", "No notes.", "Keine Hinweise.", 3),
			optNext("Add notes", "Hinweise hinzufügen", "I’ll add notes.", "Ich füge Hinweise hinzu.", 3),
		},
	},
	{
		ID:  "towels_4",
		Bot: lt("Ready to submit the request?", "Bereit, die Anfrage zu senden?"),
		Options: []models.Option{
			optService("Submit now", "Jetzt senden", "Submit the request.", "Bitte senden.", "towels"),
			optNext("Change time", "Zeit ändern", "I want to change the time.", "Ich möchte die Zeit ändern.", 0),
			optEnd("Cancel", "Abbrechen", "Cancel.", "Abbrechen."),
		},
	},
}}

var lateFlow = models.Flow{IntentID: "service_late", Steps: []models.Step{
	{
		ID:  "late_1",
		Bot: lt("Late checkout is 25€. What time do you prefer?", "Late Check-out kostet 25€. Welche Uhrzeit passt dir?"),
		Options: []models.Option{
			optNext("13:00", "13:00", "13:00 works.", "13:00 passt.", 1),
			optNext("14:00", "14:00", "14:00 works.", "14:00 passt.", 1),
			optNext("15:00", "15:00", "15:00 works.", "15:00 passt.", 1),
		},
	},
	{
		ID:  "late_2",
		Bot: lt("I’ll check availability with the front desk.", "Ich prüfe die Verfügbarkeit mit der Rezeption."),
		Options: []models.Option{
			optNext("Continue", "Weiter", "Continue.", "Weiter.", 2),
			optEnd("Cancel", "Abbrechen", "Cancel the request.", "Anfrage abbrechen."),
		},
	},
	{
		ID:  "late_3",
		Bot: lt("Do you need the invoice emailed after checkout?", "Möchtest du die Rechnung per E-Mail nach dem Check-out?"),
		Options: []models.Option{
			optNext("Yes", "Ja", "Yes, please email it.", "Ja, bitte per E-Mail.", 3),
			optNext("No", "Nein", "No, thanks.", "Nein, danke.", 3),
		},
	},
	{
		ID:  "late_4",
		Bot: lt("Ready to submit the late checkout request?", "Bereit, die Late-Check-out-Anfrage zu senden?"),
		Options: []models.Option{
			optService("Submit now", "Jetzt senden", "Submit the request.", "Bitte senden.", "late"),
			optNext("Change time", "Zeit ändern", "I want to change the time.", "Ich möchte die Zeit ändern.", 0),
			optEnd("Cancel", "Abbrechen", "Cancel.", "Abbrechen."),
		},
	},
}}

var repairFlow = models.Flow{IntentID: "service_repair", Steps: []models.Step{
	{
		ID:  "repair_1",
		Bot: lt("I’m sorry about that. What’s the issue?", "Das tut mir leid. Was ist das Problem?"),
		Options: []models.Option{
			optNext("Heating", "Heizung", "The heating is not working.", "Die Heizung funktioniert nicht.", 1),
			optNext("Lighting", "Licht", "The lamp is broken.", "Die Lampe ist kaputt.", 1),
			optNext("Other", "Anderes", "Another issue.", "Ein anderes Problem.", 1),
		},
	},
	{
		ID:  "repair_2",
		Bot: lt("Is this urgent?", "Ist das dringend?"),
		Options: []models.Option{
			optNext("Yes, urgent", "Ja, dringend", "Yes, urgent.", "Ja, dringend.", 2),
			optNext("Not urgent", "Nicht dringend", "Not urgent.", "Nicht dringend.", 2),
		},
	},
	{
		ID:  "repair_3",
		Bot: lt("When can our technician access the room?", "Wann kann der Techniker ins Zimmer?"),
		Options: []models.Option{
			optNext("Anytime today", "Heute jederzeit", "Anytime today.", "Heute jederzeit.", 3),
			optNext("After 17:00", "Nach 17:00", "After 17:00.", "Nach 17:00.", 3),
			optNext("Tomorrow", "Morgen", "Tomorrow.", "Morgen.", 3),
		},
	},
	{
		ID:  "repair_4",
		Bot: lt("Ready to submit the repair request?", "Bereit, die Reparatur-Anfrage zu senden?"),
		Options: []models.Option{
			optService("Submit now", "Jetzt senden", "Submit the request.", "Bitte senden.", "repair"),
			optJump("Contact reception", "Rezeption", "Please contact reception.", "Bitte Rezeption kontaktieren.", "reception"),
			optEnd("Cancel", "Abbrechen", "Cancel.", "Abbrechen."),
		},
	},
}}

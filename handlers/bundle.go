package handlers

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Chat        *ChatHandler
	Preferences *PreferencesHandler
	Catalog     *CatalogHandler
	Desk        *DeskHandler
}

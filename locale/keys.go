package locale

const (
	PropertiesLoadFailed = "properties.load_failed"
	PropertyLoadFailed   = "property.load_failed"
	FavoriteAdded        = "favorites.added"
	FavoriteRemoved      = "favorites.removed"
	FavoriteToggleFailed = "favorites.toggle_failed"
	FavoritesLoadFailed  = "favorites.load_failed"
	FavoriteRemovedOne   = "favorites.removed_one"
	FavoriteRemoveFailed = "favorites.remove_failed"
	AssistantUnavailable = "assistant.unavailable"
	AssistantFailed      = "assistant.failed"
	AssistantTitle       = "assistant.title"
	AssistantPlaceholder = "assistant.placeholder"
	AssistantLoading     = "assistant.loading"
	Close                = "ui.close"
	TabHome              = "tab.home"
	TabFavorites         = "tab.favorites"
	TabDetails           = "tab.details"
	HomeTitle            = "home.title"
	HomeEmpty            = "home.empty"
	FavoritesTitle       = "favorites.title"
	FavoritesEmpty       = "favorites.empty"
	DetailsTitle         = "details.title"
	DetailsLoading       = "details.loading"
	DetailsEmpty         = "details.empty"
	FiltersTitle         = "filters.title"
	FiltersCity          = "filters.city"
	FiltersType          = "filters.type"
	FiltersStatus        = "filters.status"
	FiltersMinPrice      = "filters.min_price"
	FiltersMaxPrice      = "filters.max_price"
	FiltersBedrooms      = "filters.bedrooms"
	FiltersBathrooms     = "filters.bathrooms"
	FiltersFeatured      = "filters.featured"
	FiltersAny           = "filters.any"
	FiltersYes           = "filters.yes"
	FiltersNo            = "filters.no"
)

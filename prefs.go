package blogify

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	ViewGrid = "grid"
	ViewList = "list"
)

type Preferences struct {
	Theme     string `json:"theme"`
	View      string `json:"view"`
	HideIntro bool   `json:"hideIntro"`
}

type PreferencesRepository interface {
	Get() (Preferences, error)
	Save(Preferences) error
}

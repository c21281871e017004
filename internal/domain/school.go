package domain

type School struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	FormattedName string `json:"formatted_name"`
}

type Game struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	CoverURL string `json:"cover_url,omitempty"`
}

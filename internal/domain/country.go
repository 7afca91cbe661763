package domain

// Country is one entry of the static country list served to dropdowns.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

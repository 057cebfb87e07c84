package models

// UsernameCount is a read model: movement count grouped by acting username.
type UsernameCount struct {
	Username string `json:"username"`
	Count    int    `json:"count"`
}

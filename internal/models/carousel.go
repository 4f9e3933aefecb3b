package models

type CarouselState struct {
	Name     string    `json:"name"`
	Index    int       `json:"index"`
	MaxIndex int       `json:"max_index"`
	Visible  int       `json:"visible"`
	Paused   bool      `json:"paused"`
	Items    []Product `json:"items"`
}

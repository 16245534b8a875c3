package domain

type Company struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

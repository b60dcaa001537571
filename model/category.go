package model

type Category struct {
	CategoryID string `firestore:"categoryid,omitempty" json:"categoryId"`
	Name       string `firestore:"name,omitempty" json:"name"`
	Color      string `firestore:"color,omitempty" json:"color"`
}

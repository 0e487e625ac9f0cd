package model

type Game struct {
	ID          int64  `json:"id"`
	PublisherID string `json:"publisherId"`
	Name        string `json:"name"`
	Platform    string `json:"platform"`
	StoreID     string `json:"storeId"`
	BundleID    string `json:"bundleId"`
	AppVersion  string `json:"appVersion"`
	IsPublished bool   `json:"isPublished"`
}

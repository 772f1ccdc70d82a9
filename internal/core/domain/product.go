package domain

// SkinTypeAll marks products suitable for every skin type.
const SkinTypeAll = "all"

// Product is a catalog entry recommended for a skin type.
type Product struct {
	ID          string `json:"productId"`
	Name        string `json:"name"`
	SkinType    string `json:"skinType"`
	Description string `json:"description"`
}

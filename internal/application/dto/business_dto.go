package dto

// CreateBusinessRequest body para POST /api/local_businesses.
type CreateBusinessRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Address     string   `json:"address"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Preferences []string `json:"preferences"`
}

// BusinessResponse negocio local en respuestas.
type BusinessResponse struct {
	ID          string   `json:"business_id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Address     string   `json:"address"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Preferences []string `json:"preferences"`
}

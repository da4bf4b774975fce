package geometry

// AreaRequest is the JSON body for POST /geometry/circle-area.
type AreaRequest struct {
	Radius float64 `json:"radius"`
}

// AreaResponse is the JSON response for POST /geometry/circle-area.
type AreaResponse struct {
	Radius float64 `json:"radius"`
	Area   float64 `json:"area"`
}

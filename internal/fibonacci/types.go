package fibonacci

// Response is the JSON response for GET /fibonacci/{n}.
type Response struct {
	N      int    `json:"n"`
	Method string `json:"method"`
	Result int64  `json:"result"`
}

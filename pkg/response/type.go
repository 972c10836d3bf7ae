package response

// Resp is the standard JSON response body.
//
// Successful single-agent turns carry Agent and Content; multi-intent turns
// carry Results. Failures carry Error and Code.
type Resp struct {
	Success bool   `json:"success"`
	Agent   string `json:"agent,omitempty"`
	Content any    `json:"content,omitempty"`
	Results any    `json:"results,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

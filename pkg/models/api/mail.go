package api

// Message is the success envelope returned by the mail endpoints.
type Message struct {
	Message string `json:"message"`
}

// Error is the failure envelope shared by the mail endpoints and the
// reporting CLI's JSON output.
type Error struct {
	Error string `json:"error"`
}

type Health struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

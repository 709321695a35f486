package dto

// MediaArtifact is a produced output ready to be streamed back to the client.
// Path points into scratch storage and is deleted once the response has been
// handed off.
type MediaArtifact struct {
	Path      string
	Filename  string
	MediaType string
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type RootResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

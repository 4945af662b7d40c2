package dto

// StatusResponse is the minimal confirmation body used by write endpoints.
type StatusResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id,omitempty"`
}

// UploadResponse is returned by the upload intake endpoints.
type UploadResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
	Output string `json:"output,omitempty"`
}

// APIInfo is the capability descriptor served at GET /api.
type APIInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Status    string            `json:"status"`
}

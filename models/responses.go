package models

// PatchResponse is the body returned by the aggregate PATCH endpoints.
type PatchResponse struct {
	Success bool `json:"success"`
}

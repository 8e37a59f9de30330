package models

// DeleteResult describes the outcome of a two-system conversation delete.
// Success is true when either system reports a successful (or not-found)
// deletion, false only when both report hard errors.
type DeleteResult struct {
	Success         bool   `json:"success"`
	BackendDeleted  bool   `json:"backendDeleted"`
	ProviderDeleted bool   `json:"providerDeleted"`
	Message         string `json:"message,omitempty"`
	Error           string `json:"error,omitempty"`
}

// SyncResult holds the backend's response to a whole-store resync
type SyncResult struct {
	Processed int `json:"processed"`
}

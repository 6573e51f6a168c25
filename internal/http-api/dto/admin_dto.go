package dto

// RejectRequest: optional moderator feedback attached to a rejection
type RejectRequest struct {
	Feedback string `json:"feedback" binding:"omitempty,max=5000"`
}

// FeatureResponse: outcome of the feature toggle
type FeatureResponse struct {
	Message    string `json:"message"`
	IsFeatured bool   `json:"is_featured"`
}

package dtos

// ApplyJobRequest is the body of POST /applications.
type ApplyJobRequest struct {
	JobID uint `json:"job_id" binding:"required,gt=0"`
}

// Identity is the caller as vouched for by the upstream gateway.
type Identity struct {
	UserID int64
	Email  string
}

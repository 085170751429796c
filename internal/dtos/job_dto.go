package dtos

// JobCreationRequest is the body of POST /api/v1/jobs.
// Required fields are enforced by the service so the caller gets field level messages.
type JobCreationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`

	// Optional Fields
	Location *string  `json:"location"`
	Salary   *float64 `json:"salary"`
}

// JobUpdateRequest is a partial update; nil fields are left untouched.
type JobUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Company     *string  `json:"company"`
	Location    *string  `json:"location"`
	Salary      *float64 `json:"salary"`
}

// RemoteJob is the job payload returned by the listing service under "data".
type RemoteJob struct {
	ID          uint     `json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Company     *string  `json:"company"`
	Location    *string  `json:"location"`
	Salary      *float64 `json:"salary"`
}

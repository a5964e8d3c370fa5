package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogPostHandler blogPostHandler
	statusHandler   statusHandler
	imageHandler    imageHandler
	bookHandler     bookHandler
	contactHandler  contactHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// blogPostRequest is the create/update payload for a blog post.
type blogPostRequest struct {
	Title    string `json:"title" validate:"required,max=100"`
	Content  string `json:"content" validate:"required"`
	StatusID uint   `json:"statusId" validate:"required"`
}

// statusTransitionRequest moves a post between lifecycle states.
type statusTransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published archived"`
}

// statusRequest creates a new status vocabulary row.
type statusRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// uploadCompleteRequest is the callback payload the upload collaborator sends
// once a file has landed in the object store.
type uploadCompleteRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	URL          string `json:"url" validate:"required,url"`
	Key          string `json:"key" validate:"required"`
	Size         int64  `json:"size" validate:"gte=0"`
	Type         string `json:"type" validate:"required,max=100"`
	LastModified int64  `json:"lastModified"` // epoch milliseconds, optional
}

package types

// LoginRequest represents the request body for dashboard login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChatMessageRequest represents the request body for sending a chat message
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// CreateSessionRequest represents the request body for opening a chat session
type CreateSessionRequest struct {
	ClientTag string `json:"client_tag"`
}

// ContactMessageRequest represents the request body for the contact form
type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"image_url"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags"`
}

// UpdateProjectRequest represents the request body for updating a project
type UpdateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags"`
}

// RecommendSongRequest represents a visitor's song suggestion
type RecommendSongRequest struct {
	Title         string `json:"title" binding:"required"`
	Artist        string `json:"artist" binding:"required"`
	Note          string `json:"note"`
	SongURL       string `json:"song_url"`
	AlbumImageURL string `json:"album_image_url"`
	PreviewURL    string `json:"preview_url"`
}

// SetSongOfTheDayRequest represents the request body for pinning the daily song
type SetSongOfTheDayRequest struct {
	Title         string `json:"title" binding:"required"`
	Artist        string `json:"artist" binding:"required"`
	AlbumImageURL string `json:"album_image_url"`
	SongURL       string `json:"song_url"`
	PreviewURL    string `json:"preview_url"`
}

package http

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type createProjectRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Thumbnail       string   `json:"thumbnail"`
	Gallery         []string `json:"gallery"`
	Technologies    []string `json:"technologies"`
	Category        string   `json:"category"`
	DemoURL         string   `json:"demoUrl"`
	SourceURL       string   `json:"sourceUrl"`
	Featured        *bool    `json:"featured"`
	Published       *bool    `json:"published"`
	Order           *int     `json:"order"`
}

// updateProjectRequest carries only the fields present in the body; id and
// createdAt have no representation here, so attempts to set them are
// silently dropped rather than errored.
type updateProjectRequest struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	FullDescription *string   `json:"fullDescription"`
	Thumbnail       *string   `json:"thumbnail"`
	Gallery         *[]string `json:"gallery"`
	Technologies    *[]string `json:"technologies"`
	Category        *string   `json:"category"`
	DemoURL         *string   `json:"demoUrl"`
	SourceURL       *string   `json:"sourceUrl"`
	Featured        *bool     `json:"featured"`
	Published       *bool     `json:"published"`
	Order           *int      `json:"order"`
}

// uploadRequest carries the image as base64 in the JSON body rather than
// multipart, matching the admin frontend.
type uploadRequest struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Folder   string `json:"folder"`
	Data     string `json:"data"`
}

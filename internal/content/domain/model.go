package domain

import "time"

// Project is one portfolio entry. The document ID is assigned by the store
// and never written back into the document body.
type Project struct {
	ID              string    `firestore:"-" json:"id"`
	Title           string    `firestore:"title" json:"title"`
	Description     string    `firestore:"description" json:"description"`
	FullDescription string    `firestore:"fullDescription" json:"fullDescription"`
	Thumbnail       string    `firestore:"thumbnail" json:"thumbnail"`
	Gallery         []string  `firestore:"gallery" json:"gallery"`
	Technologies    []string  `firestore:"technologies" json:"technologies"`
	Category        string    `firestore:"category" json:"category"`
	DemoURL         string    `firestore:"demoUrl" json:"demoUrl,omitempty"`
	SourceURL       string    `firestore:"sourceUrl" json:"sourceUrl,omitempty"`
	Featured        bool      `firestore:"featured" json:"featured"`
	Published       bool      `firestore:"published" json:"published"`
	Order           int       `firestore:"order" json:"order"`
	CreatedAt       time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

// Profile is the singleton owner record. It has no published gate and is
// always publicly readable.
type Profile struct {
	Name        string            `firestore:"name" json:"name"`
	Title       string            `firestore:"title" json:"title"`
	Bio         string            `firestore:"bio" json:"bio"`
	Email       string            `firestore:"email" json:"email"`
	SocialLinks map[string]string `firestore:"socialLinks" json:"socialLinks,omitempty"`
	Skills      []string          `firestore:"skills" json:"skills"`
	ResumeURL   string            `firestore:"resumeUrl" json:"resumeUrl,omitempty"`
	AvatarURL   string            `firestore:"avatarUrl" json:"avatarUrl,omitempty"`
	Experience  []WorkExperience  `firestore:"experience" json:"experience,omitempty"`
	UpdatedAt   time.Time         `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

type WorkExperience struct {
	Company          string   `firestore:"company" json:"company"`
	Role             string   `firestore:"role" json:"role"`
	Location         string   `firestore:"location" json:"location,omitempty"`
	StartDate        string   `firestore:"startDate" json:"startDate"`
	EndDate          string   `firestore:"endDate" json:"endDate,omitempty"`
	Responsibilities []string `firestore:"responsibilities" json:"responsibilities,omitempty"`
}

// Inquiry is one contact-form submission. ClientKey is the opaque rate-limit
// identity of the submitter; it never leaves the server.
type Inquiry struct {
	ID          string    `firestore:"-" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Email       string    `firestore:"email" json:"email"`
	Subject     string    `firestore:"subject" json:"subject"`
	Message     string    `firestore:"message" json:"message"`
	ClientKey   string    `firestore:"clientKey" json:"-"`
	Read        bool      `firestore:"read" json:"read"`
	Replied     bool      `firestore:"replied" json:"replied"`
	SubmittedAt time.Time `firestore:"submittedAt,serverTimestamp" json:"submittedAt"`
}

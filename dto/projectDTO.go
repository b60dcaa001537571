package dto

type CreateProjectRequest struct {
	Name                string   `json:"name" binding:"required"`
	Color               string   `json:"color"`
	Description         string   `json:"description"`
	Category            string   `json:"category"` // comma-joined category labels
	AvailableCategories []string `json:"availableCategories"`
}

type UpdateAboutRequest struct {
	Description *string             `json:"description"`
	Links       []LinkRequest       `json:"links"`
	Attachments []AttachmentRequest `json:"attachments"`
}

type LinkRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

type AttachmentRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
	Size int64  `json:"size"`
}

type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

type DiagnoseResponse struct {
	NeedsMigration      bool `json:"needsMigration"`
	ProjectTasksCount   int  `json:"projectTasksCount"`
	OldFormatTasksCount int  `json:"oldFormatTasksCount"`
}

type MigrateResponse struct {
	MigratedCount int `json:"migratedCount"`
}

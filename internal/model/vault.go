package model

// ScheduleGroup is a user-defined grouping of tasks. Grouping is purely
// organizational and has no effect on scheduling.
type ScheduleGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Note is a vault entry. Content is stored as the editor produced it.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	FolderID  string   `json:"folderId"`
	Tags      []string `json:"tags"`
	UpdatedAt int64    `json:"updatedAt"`
}

// Folder groups vault notes.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

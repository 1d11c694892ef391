package nlmcontract

// Source types accepted by source_add.
const (
	SourceTypeURL     = "url"
	SourceTypeText    = "text"
	SourceTypeDrive   = "drive"
	SourceTypeFile    = "file"
	SourceTypeYouTube = "youtube"
)

// Studio artifact types accepted by studio_create.
const (
	ArtifactAudio       = "audio"
	ArtifactVideo       = "video"
	ArtifactInfographic = "infographic"
	ArtifactSlideDeck   = "slide_deck"
	ArtifactReport      = "report"
	ArtifactFlashcards  = "flashcards"
	ArtifactQuiz        = "quiz"
	ArtifactDataTable   = "data_table"
	ArtifactMindMap     = "mind_map"
)

// Research search sources and modes.
const (
	ResearchSourceWeb   = "web"
	ResearchSourceDrive = "drive"

	ResearchModeFast = "fast"
	ResearchModeDeep = "deep"
)

// Collaborator roles for notebook_share_invite.
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
)

// Export destinations for export_artifact.
const (
	ExportTypeDocs   = "docs"
	ExportTypeSheets = "sheets"
)

// Note actions for the action-multiplexed note tool.
const (
	NoteActionCreate = "create"
	NoteActionList   = "list"
	NoteActionUpdate = "update"
	NoteActionDelete = "delete"
)

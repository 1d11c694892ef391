// Package nlmcontract pins down the tool contract exposed by the
// notebooklm-mcp server: tool names, environment variables, and status
// vocabularies. Update here when the server changes.
package nlmcontract

// MCP tool names - the exact names registered by notebooklm-mcp.
const (
	// Notebook tools
	ToolNotebookList     = "notebook_list"
	ToolNotebookGet      = "notebook_get"
	ToolNotebookDescribe = "notebook_describe"
	ToolNotebookCreate   = "notebook_create"
	ToolNotebookRename   = "notebook_rename"
	ToolNotebookDelete   = "notebook_delete"

	// Source tools
	ToolSourceAdd        = "source_add"
	ToolSourceListDrive  = "source_list_drive"
	ToolSourceSyncDrive  = "source_sync_drive"
	ToolSourceDelete     = "source_delete"
	ToolSourceDescribe   = "source_describe"
	ToolSourceGetContent = "source_get_content"

	// Chat tools
	ToolNotebookQuery = "notebook_query"
	ToolChatConfigure = "chat_configure"

	// Research tools
	ToolResearchStart  = "research_start"
	ToolResearchStatus = "research_status"
	ToolResearchImport = "research_import"

	// Studio tools
	ToolStudioCreate = "studio_create"
	ToolStudioStatus = "studio_status"
	ToolStudioDelete = "studio_delete"

	// Sharing tools
	ToolShareStatus = "notebook_share_status"
	ToolSharePublic = "notebook_share_public"
	ToolShareInvite = "notebook_share_invite"

	// Download and export tools
	ToolDownloadArtifact = "download_artifact"
	ToolExportArtifact   = "export_artifact"

	// Note tool (action-multiplexed: create, list, update, delete)
	ToolNote = "note"

	// Auth tools
	ToolRefreshAuth    = "refresh_auth"
	ToolSaveAuthTokens = "save_auth_tokens"
)

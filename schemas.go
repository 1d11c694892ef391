package nlmkit

import (
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// Argument shapes for the main tools, mirrored here so hosts that
// embed this client (agent frameworks, MCP aggregators) can advertise
// the operations with JSON Schemas without a live server connection.

type notebookListArgs struct {
	MaxResults int `json:"max_results,omitempty" jsonschema:"description=Maximum number of notebooks to return"`
}

type notebookIDArgs struct {
	NotebookID string `json:"notebook_id" jsonschema:"description=Notebook ID"`
}

type notebookCreateArgs struct {
	Title string `json:"title,omitempty" jsonschema:"description=Notebook title (may be empty)"`
}

type notebookRenameArgs struct {
	NotebookID string `json:"notebook_id"`
	NewTitle   string `json:"new_title" jsonschema:"description=New non-empty title"`
}

type notebookDeleteArgs struct {
	NotebookID string `json:"notebook_id"`
	Confirm    bool   `json:"confirm" jsonschema:"description=Must be true; deletion is irreversible"`
}

type sourceAddArgs struct {
	NotebookID  string  `json:"notebook_id"`
	SourceType  string  `json:"source_type" jsonschema:"enum=url,enum=text,enum=drive,enum=file,enum=youtube"`
	URL         string  `json:"url,omitempty"`
	Text        string  `json:"text,omitempty"`
	Title       string  `json:"title,omitempty"`
	FilePath    string  `json:"file_path,omitempty"`
	DocumentID  string  `json:"document_id,omitempty"`
	DocType     string  `json:"doc_type,omitempty"`
	Wait        bool    `json:"wait,omitempty"`
	WaitTimeout float64 `json:"wait_timeout,omitempty" jsonschema:"description=Seconds to wait for processing"`
}

type notebookQueryArgs struct {
	NotebookID     string   `json:"notebook_id"`
	Query          string   `json:"query" jsonschema:"description=Question about the notebook's sources"`
	SourceIDs      []string `json:"source_ids,omitempty"`
	ConversationID string   `json:"conversation_id,omitempty"`
	Timeout        float64  `json:"timeout,omitempty"`
}

type researchStartArgs struct {
	Query      string `json:"query"`
	Source     string `json:"source,omitempty" jsonschema:"enum=web,enum=drive"`
	Mode       string `json:"mode,omitempty" jsonschema:"enum=fast,enum=deep"`
	NotebookID string `json:"notebook_id,omitempty"`
	Title      string `json:"title,omitempty"`
}

type researchStatusArgs struct {
	NotebookID   string `json:"notebook_id"`
	PollInterval int    `json:"poll_interval,omitempty" jsonschema:"description=Seconds between server-side polls"`
	MaxWait      int    `json:"max_wait,omitempty" jsonschema:"description=Wait budget for this call in seconds"`
	Compact      bool   `json:"compact,omitempty"`
	TaskID       string `json:"task_id,omitempty"`
	Query        string `json:"query,omitempty"`
}

type researchImportArgs struct {
	NotebookID    string `json:"notebook_id"`
	TaskID        string `json:"task_id"`
	SourceIndices []int  `json:"source_indices,omitempty"`
}

type studioCreateArgs struct {
	NotebookID   string   `json:"notebook_id"`
	ArtifactType string   `json:"artifact_type" jsonschema:"enum=audio,enum=video,enum=infographic,enum=slide_deck,enum=report,enum=flashcards,enum=quiz,enum=data_table,enum=mind_map"`
	SourceIDs    []string `json:"source_ids,omitempty"`
	Confirm      bool     `json:"confirm" jsonschema:"description=Must be true; creation triggers content generation"`
}

type noteArgs struct {
	NotebookID string `json:"notebook_id"`
	Action     string `json:"action" jsonschema:"enum=create,enum=list,enum=update,enum=delete"`
	NoteID     string `json:"note_id,omitempty"`
	Content    string `json:"content,omitempty"`
	Title      string `json:"title,omitempty"`
	Confirm    bool   `json:"confirm,omitempty"`
}

// toolArgTypes maps tool names to their argument shapes.
var toolArgTypes = map[string]any{
	nlmcontract.ToolNotebookList:     notebookListArgs{},
	nlmcontract.ToolNotebookGet:      notebookIDArgs{},
	nlmcontract.ToolNotebookDescribe: notebookIDArgs{},
	nlmcontract.ToolNotebookCreate:   notebookCreateArgs{},
	nlmcontract.ToolNotebookRename:   notebookRenameArgs{},
	nlmcontract.ToolNotebookDelete:   notebookDeleteArgs{},
	nlmcontract.ToolSourceAdd:        sourceAddArgs{},
	nlmcontract.ToolNotebookQuery:    notebookQueryArgs{},
	nlmcontract.ToolResearchStart:    researchStartArgs{},
	nlmcontract.ToolResearchStatus:   researchStatusArgs{},
	nlmcontract.ToolResearchImport:   researchImportArgs{},
	nlmcontract.ToolStudioCreate:     studioCreateArgs{},
	nlmcontract.ToolNote:             noteArgs{},
}

// ToolSchema returns the JSON Schema for a tool's arguments. Only the
// tools with modeled argument shapes are known.
func ToolSchema(name string) (*jsonschema.Schema, error) {
	typ, ok := toolArgTypes[name]
	if !ok {
		return nil, fmt.Errorf("no argument schema for tool %q", name)
	}
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	return reflector.Reflect(typ), nil
}

// SchemaTools lists the tool names with modeled argument schemas, in
// sorted order.
func SchemaTools() []string {
	names := make([]string, 0, len(toolArgTypes))
	for name := range toolArgTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

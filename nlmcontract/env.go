package nlmcontract

// Process contract for spawning the MCP server.
const (
	// DefaultCommand is the executable name resolved via PATH.
	DefaultCommand = "notebooklm-mcp"

	// EnvProfile selects a named NotebookLM profile (from nlm login).
	EnvProfile = "NOTEBOOKLM_MCP_PROFILE"

	// EnvHome is substituted to isolate persisted credentials per
	// logical user. The server keeps its state under
	// $HOME/.notebooklm-mcp-cli.
	EnvHome = "HOME"

	// CredentialDirName is the server's state directory under $HOME.
	CredentialDirName = ".notebooklm-mcp-cli"

	// CredentialFileName holds the persisted NotebookLM cookies.
	CredentialFileName = "credentials.json"
)

// Package nlmkit is a typed Go client for NotebookLM, reached through
// the notebooklm-mcp server over an MCP stdio session.
//
// The client spawns notebooklm-mcp as a subprocess on first use and
// speaks the Model Context Protocol over its stdin/stdout. Every
// operation is a typed wrapper around one MCP tool call; errors are
// classified into kinds (authentication, not found, rate limit,
// validation, generation, timeout) with the originating tool name
// preserved in the message.
//
// # Quick Start
//
//	client := nlmkit.New()
//	defer client.Close()
//
//	notebooks, err := client.Notebook.List(ctx, 0)
//	nb, err := client.Notebook.Create(ctx, "My Research")
//	answer, err := client.Chat.Ask(ctx, nb.ID, "What are the main points?")
//
// # Research
//
// Deep research completes asynchronously on the remote side. Start a
// task, then poll it to a terminal status:
//
//	task, err := client.Research.Start(ctx, "history of the transistor",
//	    nlmkit.WithResearchMode(nlmcontract.ResearchModeDeep),
//	    nlmkit.WithStartRetries(3))
//	task, err = client.Research.Status(ctx, task.NotebookID,
//	    nlmkit.WithMaxWait(10*time.Minute))
//
// # Isolation
//
// One Session owns one subprocess and its credential state. For
// multi-tenant use, give each tenant its own Client with its own
// profile or home directory:
//
//	client := nlmkit.New(nlmkit.WithSessionOptions(
//	    nlmkit.WithProfile("work"),
//	    nlmkit.WithHomeDir("/srv/tenants/alice"),
//	))
package nlmkit

package transcript

// Builtin returns the sessions shown on the Llamaware site, newly built on
// every call.
func Builtin() Collection {
	return NewCollection(
		Session{
			Title: "Agent Startup",
			Commands: []Command{
				{
					Input: "./build/bin/llamaware-agent",
					Output: `
██      ██       █████  ███    ███  █████  ██     ██  █████  ██████  ███████ 
██      ██      ██   ██ ████  ████ ██   ██ ██     ██ ██   ██ ██   ██ ██      
██      ██      ███████ ██ ████ ██ ███████ ██  █  ██ ███████ ██████  █████   
██      ██      ██   ██ ██  ██  ██ ██   ██ ██ ███ ██ ██   ██ ██   ██ ██      
███████ ███████ ██   ██ ██      ██ ██   ██  ███ ███  ██   ██ ██   ██ ███████ 
Llamaware
----------------------------------------

Enterprise Platform Ready
✓ 16 features loaded | linux | macos | windows
✓ Docker sandboxing available
✓ MCP server support enabled

Type 'help' for commands or 'quit' to exit`,
				},
				{
					Input: "help",
					Output: `Commands
----------------------------------------
Files
  @file <path>             - Inject file
  @directory <path>        - Inject directory
  read:<file>              - Read file
  read:<file>:<start>:<count> - Read range
  write:<file> <content>   - Write file
  replace:<file>:<old>:<new> - Replace text
  grep:<pattern>[:dir[:filter]] - Search text

Sessions
  /save <name> [tags]       - Save session
  /resume <name>           - Resume session
  /sessions               - List sessions
  /compress               - Compress context
  remember:<fact>          - Remember fact
  memory                  - Show memory
  clear                   - Clear session
  forget                  - Clear memory

Web
  /fetch <url> [format]     - Fetch content
  search:<query>            - Search web
  /mcp servers             - List servers
  /mcp resources <server>   - List resources
  /mcp tools <server>       - List tools

Checkpoints
  /checkpoint <name>        - Create checkpoint
  /restore <name>          - Restore checkpoint
  /checkpoints             - List checkpoints

Themes
  /theme list              - List themes
  /theme set <name>         - Set theme
  /theme preview <name>     - Preview theme

Security
  /auth providers           - List providers
  /auth set <provider>      - Set provider
  /auth key <provider> <key> - Set key
  /sandbox run <command>    - Run sandboxed
  /sandbox status           - Check status

Errors
  /error report             - View errors
  /error recent <count>     - Show recent
  /error export <file>      - Export log

System
  cmd:<command>             - Run command
  /tools                   - Show tools
  !                        - Toggle shell
  help                     - Show help
  quit                     - Exit

Notes
Set theme with /theme set dark
Configure auth with /auth key
Create checkpoints before changes
Use /sandbox for safe execution
----------------------------------------`,
				},
			},
		},
		Session{
			Title: "Status & Features",
			Commands: []Command{
				{
					Input: "/status",
					Output: `Status
----------------------------------------
Files (4/4)
   File injection
   Multi-file operations
   Context hierarchy
   Shell integration

Sessions (4/4)
   Session management
   Tool registry
   Configuration
   Context compression

Extensions (4/4)
   MCP servers
   Checkpoints
   Web fetch
   File filtering

Security (4/4)
   Themes
   Authentication
   Sandboxing
   Error handling

16 features active
----------------------------------------`,
				},
			},
		},
		Session{
			Title: "Example Usage",
			Commands: []Command{
				{
					Input: "cmd:ls -la",
					Output: `[Executing]: ls -la
[Command Result]
total 48
drwxr-xr-x  12 user  staff   384 Jan 28 10:30 .
drwxr-xr-x   3 user  staff    96 Jan 28 10:25 ..
-rw-r--r--   1 user  staff   123 Jan 28 10:30 .env.example
-rw-r--r--   1 user  staff  1234 Jan 28 10:30 CMakeLists.txt
-rw-r--r--   1 user  staff   567 Jan 28 10:30 LICENSE
-rw-r--r--   1 user  staff  2345 Jan 28 10:30 Makefile
-rw-r--r--   1 user  staff  3456 Jan 28 10:30 README.md
drwxr-xr-x   4 user  staff   128 Jan 28 10:30 build
drwxr-xr-x   3 user  staff    96 Jan 28 10:30 data
drwxr-xr-x   5 user  staff   160 Jan 28 10:30 include
drwxr-xr-x   8 user  staff   256 Jan 28 10:30 package
drwxr-xr-x   6 user  staff   192 Jan 28 10:30 src`,
				},
				{
					Input: "write:test.txt Hello from Llamaware Agent!",
					Output: `[Write Result]
File 'test.txt' written successfully (27 bytes)`,
				},
				{
					Input: "read:test.txt",
					Output: `[File Content]
Hello from Llamaware Agent!`,
				},
				{
					Input:  "/theme set dark",
					Output: `Theme set to 'dark'`,
				},
				{
					Input: "/mcp servers",
					Output: `[MCP] Available Servers:
- local (http://localhost:8000)
  Tools: web.fetch, files.list, sandbox.run`,
				},
			},
		},
	)
}

// HeroPreview is the short session shown on the tablet under the hero
// banner.
func HeroPreview() Session {
	return Session{
		Title: "llamaware enterprise agent",
		Commands: []Command{
			{
				Input: "/features",
				Output: `=== enterprise features ===
• file injection (@file, @directory)
• session management (save/resume)
• mcp server support
• docker sandboxing
• theme system (/theme)
• checkpointing (/restore)`,
			},
			{
				Input: "/sandbox docker run python:3.11",
				Output: `[sandboxing]: creating secure container
container: llamaware_sandbox_001
status: ready for safe execution`,
			},
		},
	}
}

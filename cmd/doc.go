// Package cmd implements the archie command line.
//
// # Architecture
//
//   - root.go: App struct, cobra command setup, flags, logging and manager detection
//   - interactive.go: Interactive shell startup (terminal check, catalog load, session loop)
//   - exec.go: One-shot mode behind -e/--exec
//
// # Key Components
//
// ## App
//
// The App struct holds configuration and the process and terminal
// collaborators (runner, shell, line editor factory). Tests replace those
// collaborators to drive the command without a terminal or a package manager.
//
// ## Modes
//
//   - no arguments: interactive shell with package name completion
//   - --version: banner with the manager's own version
//   - -e <key> [argument]: a single command; missing arguments are prompted for
//   - --init-config: write ~/.config/archie/config.yaml
//
// # Usage
//
//	func main() {
//	    cmd.Execute()
//	}
package cmd

// Package plan loads declarative task plans from TOML, YAML, or JSON.
//
// A plan names a set of tasks and the dependency edges between them, plus
// the initial lifecycle flags for each task. The CLI, the HTTP server, and
// the live board all start from the same planfile, so the on-disk format
// is the one shared input of the whole tool.
//
// # Format
//
// A minimal TOML plan:
//
//	title = "release"
//
//	[[tasks]]
//	id = "build"
//
//	[[tasks]]
//	id = "test"
//	needs = ["build"]
//
//	[[tasks]]
//	id = "publish"
//	needs = ["test"]
//	hold = true
//
// Each task may declare:
//   - needs: IDs of tasks that must complete first
//   - hold: stage the task without activating it
//   - paused: insert the task suspended
//
// hold and paused are mutually exclusive; a held task is not live yet, so
// there is nothing to suspend.
//
// # Loading
//
// [Load] picks the codec from the file extension, [Decode] takes an
// explicit format, and [Fetch] retrieves a planfile over http(s) with
// retries. All three validate the plan before returning it.
package plan

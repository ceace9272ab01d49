// Package reconcile compares a declarative asset manifest against the files that actually exist
// under the manifest's base directory.
//
// A manifest declares the assets an export is expected to produce. Each declared file is expanded
// into one or more relative paths:
//   - entries without an extension get one candidate per configured extension
//   - entries that already carry an extension are taken verbatim
//   - every candidate is placed once per scale: scale 1 at the root, any other scale
//     inside a "<scale>.0x/" folder
//
// The expanded set is then diffed against the actual listing to produce a Report with two sorted
// groups: Missing (declared but absent) and New (present but undeclared).
//
// # Architecture
//
// 1. Engine: pure expansion and set difference (Expand, Reconcile). No I/O, no shared state.
//
// 2. Source: capability interface that reads the manifest and lists files. The Checker wires a
//    Source to the engine so tests can substitute in-memory fakes for the file system.
//
// 3. Cache: TTL-based listing cache with stampede protection, used by long-running callers.
//
// 4. Plan: optional follow-up actions (optimize or purge new assets) planned from a report and
//    applied through a Mutator.
//
// # Usage Example
//
//	checker := reconcile.NewChecker(source)
//	result, err := checker.Check(ctx)
//	if err != nil {
//	    switch reconcile.KindOf(err) {
//	    case reconcile.KindParse:
//	        // malformed manifest
//	    case reconcile.KindIO:
//	        // unreadable manifest or asset directory
//	    }
//	}
//	fmt.Println(result.Report.Missing, result.Report.New)
package reconcile

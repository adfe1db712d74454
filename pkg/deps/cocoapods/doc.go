// Package cocoapods extracts licensed dependency records from a CocoaPods
// Podfile.lock.
//
// # Lock-file Format
//
// Only the leading PODS block is read. It is a contiguous run of lines
// terminated by the first empty line:
//
//	PODS:
//	  - Alamofire (4.7.3)
//	  - SwiftLint (0.27.0):
//	    - SomeSubdep (1.0.0)
//
//	DEPENDENCIES:
//
// A line is a top-level entry when it starts with exactly two spaces, a
// hyphen, and a space. Nested sub-dependency lines are indented further and
// never match. Entries that split into too few space-separated tokens are
// skipped without error.
//
// # License Resolution
//
// Each entry is paired with license text through a [deps.LicenseLookup].
// [PodsDir] implements the on-disk layout used by CocoaPods, reading
// Pods/<name>/LICENSE below the project directory. An entry without a
// readable license is left out of the result.
package cocoapods

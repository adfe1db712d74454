// Package io reads and writes the attributions report.
//
// # JSON Format
//
// The report is a pretty-printed JSON array with one object per dependency,
// in lock-file order:
//
//	[
//	  {
//	    "name": "Alamofire",
//	    "version": "4.7.3",
//	    "license": "Copyright (c) 2014-2018 Alamofire Software Foundation..."
//	  }
//	]
//
// All three fields are always present. A report without dependencies is an
// empty array, never null.
//
// # Export
//
// Use [ExportReport] to replace the report file at a path, or [WriteReport]
// to write to any io.Writer. Records are encoded completely before anything
// is written, so an encoding failure leaves an existing report untouched.
//
// # Import
//
// Use [ImportReport] or [ReadReport] to load a report back into
// [deps.Dependency] values. Writing and then reading a report yields the
// original records in their original order.
package io

// Package pkg provides the libraries behind the attribute CLI.
//
// # Overview
//
// attribute turns a CocoaPods Podfile.lock and the installed pods' LICENSE
// files into attributions.json, the credits list an iOS application bundles
// for its legal screen. The directory is organized as:
//
//  1. [deps] - the dependency record and the license lookup capability
//  2. [deps/cocoapods] - Podfile.lock reading, parsing, and Pods/ lookup
//  3. [io] - attributions report encoding and decoding
//  4. [pipeline] - orchestration (read → parse → write)
//  5. [config], [errors], [observability], [buildinfo] - supporting concerns
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(ctx, pipeline.Options{Dir: "."})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", len(result.Dependencies), "attributions")
//
// [deps]: github.com/matzehuels/attribute/pkg/deps
// [deps/cocoapods]: github.com/matzehuels/attribute/pkg/deps/cocoapods
// [io]: github.com/matzehuels/attribute/pkg/io
// [pipeline]: github.com/matzehuels/attribute/pkg/pipeline
// [config]: github.com/matzehuels/attribute/pkg/config
// [errors]: github.com/matzehuels/attribute/pkg/errors
// [observability]: github.com/matzehuels/attribute/pkg/observability
// [buildinfo]: github.com/matzehuels/attribute/pkg/buildinfo
package pkg

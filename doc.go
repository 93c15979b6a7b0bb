// Package wandbox is a small client binding for the wandbox.org remote
// compilation API. It builds compile requests, dispatches them over HTTPS and
// maps the JSON response into a CompilationResult.
//
//	client := wandbox.NewClient()
//
//	catalog, err := client.LoadCatalog(ctx)
//	if err != nil {
//		return err
//	}
//
//	builder := wandbox.NewCompilationBuilder()
//	builder.Target("c++")
//	builder.Options("-Wall", "-Werror")
//	builder.Code(`#include <iostream>
//	int main() { std::cout << "test"; }`)
//
//	if err := builder.Build(catalog); err != nil {
//		return err
//	}
//
//	result, err := builder.Dispatch(ctx, client)
//
// Failures are typed: a *ValidationError before any network traffic, a
// *NetworkError when the endpoint cannot be reached or answers with a
// non-success status, and a *ParseError when the response body does not match
// the expected shape. Nothing is retried internally.
package wandbox

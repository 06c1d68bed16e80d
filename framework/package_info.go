// Package framework contains the low-level implementation of test infrastructure that can be
// reused for different kinds of tests.
//
// The general model is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Unlike *testing.T, a Context can be created and run outside of
// "go test", which is what lets the same tests be driven by a command line runner; and its
// results can be inspected afterward, which is what lets the test helpers themselves be tested.
//
// The domain-specific code that knows what is being tested is responsible for providing a
// domain-specific test API on top of the test context.
package framework

// Package internalcheck holds static policy tests over the library packages.
//
// The tests load pkg/numtheory, pkg/rsa and pkg/logging with
// golang.org/x/tools/go/packages and fail on patterns that are easy to write
// and hard to spot in review:
//
//   - comparing two *big.Int values with == or !=, which compares pointers
//     rather than numbers
//   - formatting values with %x or %X, which is how secrets usually leak
//     into logs and error messages
//
// The package has no exported API.
package internalcheck

// Package errors provides the coded error type shared by every tagkit package.
//
// Each error carries a stable code (e.g. "T001") registered with a category,
// a short message and a longer explanation:
//
//	err := errors.Newf(errors.CodeInvalidTag, "Tag name cannot be empty.")
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR T001: Tag name cannot be empty.
//	//
//	//   Every tag must have a non-empty name made of letters, digits and hyphens.
//
// Errors compare by code, so a bare template works as a sentinel:
//
//	if errors.Is(err, errors.New(errors.CodeInvalidTag)) { ... }
//
// All errors describe programming mistakes (bad tag names, mismatched
// begin/end calls) and are never retried.
package errors

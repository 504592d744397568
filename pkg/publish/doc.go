// Package publish renders batches of render requests and writes the result
// to a Store.
//
// Stores:
//   - MemoryStore keeps objects in memory (tests, previews)
//   - DiskStore writes objects below a directory
//   - S3Store uploads objects to an S3 bucket or an S3-compatible service
//
// A Publisher renders every request before touching the store, so a render
// failure never leaves a partial document behind:
//
//	store := publish.NewMemoryStore()
//	p := publish.New(store)
//	res, err := p.Publish(ctx, "index.html", reqs)
package publish

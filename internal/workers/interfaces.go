// Package workers runs background maintenance tasks alongside the server.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

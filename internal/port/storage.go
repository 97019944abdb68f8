package port

import "context"

// ArtifactStore abstracts persistence of rendered invoice documents.
type ArtifactStore interface {
	// Save stores the document under name (invoice number + extension) and
	// returns a location the caller can hand to the user or the email sender.
	Save(ctx context.Context, name, contentType string, data []byte) (location string, err error)

	// PresignedURL returns a time-limited URL for a stored document. Stores
	// without URL support return the plain location.
	PresignedURL(ctx context.Context, name string, expirySeconds int64) (string, error)
}

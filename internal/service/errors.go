package service

import "errors"

// Failure classes for the ingestion and query paths. Extraction and index
// failures abort ingestion and are surfaced; retrieval failures are absorbed
// into an empty context; configuration failures halt the interaction.
var (
	// ErrExtraction indicates the document could not be read or decoded.
	ErrExtraction = errors.New("document extraction failed")

	// ErrIndex indicates a collection reset or upsert failed.
	ErrIndex = errors.New("vector index operation failed")

	// ErrRetrieval indicates query embedding or search failed. Recovered
	// locally and treated as "no context found".
	ErrRetrieval = errors.New("retrieval failed")

	// ErrConfiguration indicates a fatal setup problem such as an
	// embedding dimension mismatch.
	ErrConfiguration = errors.New("configuration error")
)

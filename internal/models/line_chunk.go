package models

type LineChunk struct {
	ChunkID  string
	SourceID string
	Lines    []string
}

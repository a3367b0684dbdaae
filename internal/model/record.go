package model

import "time"

// NotesRecord is the persisted unit for one processed recording.
// AudioName is the document key: saving a second record with the same
// name overwrites the first.
type NotesRecord struct {
	AudioName     string    `firestore:"audio_name" json:"audio_name"`
	Transcription string    `firestore:"transcription" json:"transcription"`
	Summary       string    `firestore:"summary" json:"summary"`
	Timestamp     time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}
